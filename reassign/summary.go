package reassign

import (
	"fmt"
	"io"
)

// Summary counts how many queries hit one, two, or more genome
// clusters at their best score. Diagnostic only.
type Summary struct {
	One, Two, More int
}

func Summarize(hits Hits) Summary {
	var s Summary
	for _, hit := range hits {
		switch len(hit.Aln) {
		case 1:
			s.One++
		case 2:
			s.Two++
		default:
			s.More++
		}
	}
	return s
}

// Total is the number of queries assigned to any cluster.
func (s Summary) Total() int {
	return s.One + s.Two + s.More
}

// Report writes the mapping summary. totalReads is the number of reads
// processed; when unknown, pass 0 to report fractions of assigned
// reads instead.
func (s Summary) Report(w io.Writer, totalReads int) {
	n := totalReads
	if n <= 0 {
		n = s.Total()
	}
	frac := func(count int) float64 {
		if n == 0 {
			return 0
		}
		return float64(count) / float64(n)
	}
	fmt.Fprintf(w, "  summary:\n")
	fmt.Fprintf(w, "    %d reads assigned to any genome cluster (%.2f)\n", s.Total(), frac(s.Total()))
	fmt.Fprintf(w, "    %d reads assigned to 1 genome cluster (%.2f)\n", s.One, frac(s.One))
	fmt.Fprintf(w, "    %d reads assigned to 2 genome clusters (%.2f)\n", s.Two, frac(s.Two))
	fmt.Fprintf(w, "    %d reads assigned to 3 or more genome clusters (%.2f)\n", s.More, frac(s.More))
}
