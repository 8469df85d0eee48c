// Package pangenome computes per-pangene base-pair coverage from
// reassigned per-genome alignments.
package pangenome

import (
	"fmt"
	"strconv"

	midas "github.com/yi1873/MIDAS"
)

// Interval is one pangene annotation interval with 0-based inclusive
// coordinates. The pangene id carries the interval type as a suffix to
// keep distinct kinds apart at the same coordinates.
type Interval struct {
	GenomeID   string
	PangeneID  string
	GeneID     string
	ScaffoldID string
	Start, End int
}

// Length is the interval length in base pairs.
func (iv Interval) Length() int {
	return iv.End - iv.Start + 1
}

// ReadBed parses a cluster's pangene annotation table, a
// gzip-compressed tab-delimited file with one header line and columns
// genome_id, pangene_id, type, gene_id, scaffold_id, start, end.
// Source coordinates are 1-based and may come in either orientation;
// they are normalized to 0-based with start <= end.
func ReadBed(fileName string) ([]Interval, error) {
	rows, err := midas.ReadTab(fileName)
	if err != nil {
		return nil, err
	}

	var intervals []Interval
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 7 {
			return nil, fmt.Errorf("pangenome: line %d of %s has %d columns, want 7", i+1, fileName, len(row))
		}
		start, err := strconv.Atoi(row[5])
		if err != nil {
			return nil, fmt.Errorf("pangenome: line %d of %s: %v", i+1, fileName, err)
		}
		end, err := strconv.Atoi(row[6])
		if err != nil {
			return nil, fmt.Errorf("pangenome: line %d of %s: %v", i+1, fileName, err)
		}
		iv := Interval{
			GenomeID:   row[0],
			PangeneID:  row[1] + "_" + row[2],
			GeneID:     row[3],
			ScaffoldID: row[4],
			Start:      minInt(start, end) - 1,
			End:        maxInt(start, end) - 1,
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// Lengths maps every pangene to its interval length.
func Lengths(intervals []Interval) map[string]int {
	lengths := make(map[string]int)
	for _, iv := range intervals {
		lengths[iv.PangeneID] = iv.Length()
	}
	return lengths
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
