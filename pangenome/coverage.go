package pangenome

import (
	"os"
	"path/filepath"
	"strings"

	midas "github.com/yi1873/MIDAS"
	"github.com/yi1873/MIDAS/reads"
)

// Pos is one genomic position on a scaffold.
type Pos struct {
	Scaffold string
	P        int
}

// PosIndex maps annotated genome positions to the pangenes covering
// them. Only positions inside an interval are present, so memory is
// bounded by the annotated regions. A position may belong to several
// overlapping pangenes.
type PosIndex map[Pos]map[string]bool

// IndexGenome builds the position index for one genome's intervals.
func IndexGenome(intervals []Interval, genomeID string) PosIndex {
	idx := make(PosIndex)
	for _, iv := range intervals {
		if iv.GenomeID != genomeID {
			continue
		}
		for p := iv.Start; p <= iv.End; p++ {
			pos := Pos{Scaffold: iv.ScaffoldID, P: p}
			set := idx[pos]
			if set == nil {
				set = make(map[string]bool)
				idx[pos] = set
			}
			set[iv.PangeneID] = true
		}
	}
	return idx
}

// Counter accumulates covered base pairs per pangene.
type Counter map[string]int

// NewCounter lists every pangene of the annotation with zero coverage,
// so unobserved pangenes still appear in the output.
func NewCounter(intervals []Interval) Counter {
	c := make(Counter)
	for _, iv := range intervals {
		c[iv.PangeneID] = 0
	}
	return c
}

// Count adds one base pair to every pangene annotated at each mapped
// position of each record. The mapped span [Pos, End) already excludes
// soft-clipped and inserted bases. Every pangene overlapping a
// position gets full credit; coverage is not split across overlapping
// annotations. Positions outside the index are skipped.
func (c Counter) Count(records reads.SamRecords, idx PosIndex) {
	for _, r := range records {
		scaffold := midas.ScaffoldName(r.Ref.Name())
		for p := r.Pos; p < r.End(); p++ {
			for pangene := range idx[Pos{Scaffold: scaffold, P: p}] {
				c[pangene]++
			}
		}
	}
}

// Coverage normalizes base-pair counts by pangene length.
func (c Counter) Coverage(lengths map[string]int) map[string]float64 {
	cov := make(map[string]float64, len(c))
	for pangene, bp := range c {
		cov[pangene] = float64(bp) / float64(lengths[pangene])
	}
	return cov
}

// ClusterCoverage computes pangene coverage for one cluster from its
// annotation table and its per-genome BAM files in reassignedDir.
func ClusterCoverage(bedFileName, reassignedDir string) (map[string]float64, error) {
	intervals, err := ReadBed(bedFileName)
	if err != nil {
		return nil, err
	}
	counter := NewCounter(intervals)

	entries, err := os.ReadDir(reassignedDir)
	if err != nil {
		return nil, err
	}
	for _, ent := range entries {
		if !strings.HasSuffix(ent.Name(), ".bam") {
			continue
		}
		genomeID := strings.TrimSuffix(ent.Name(), ".bam")
		idx := IndexGenome(intervals, genomeID)
		_, records, err := reads.ReadBamFile(filepath.Join(reassignedDir, ent.Name()))
		if err != nil {
			return nil, err
		}
		counter.Count(records, idx)
	}

	return counter.Coverage(Lengths(intervals)), nil
}
