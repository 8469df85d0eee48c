package reassign

import (
	"os"
	"path/filepath"

	midas "github.com/yi1873/MIDAS"
	"github.com/yi1873/MIDAS/reads"
)

// Hit holds the best alignment score seen for one query and, per
// genome cluster, the fragment achieving it. Several clusters appear
// only when they tie at the same score.
type Hit struct {
	Score int
	Aln   map[string]reads.PairedRead
}

// Hits accumulates the best hit per query name. It is the fold state
// threaded through the cluster scans; scanning clusters in any order
// yields the same final state.
type Hits map[string]*Hit

// Update folds one scored fragment into the accumulator: a strictly
// higher score replaces the record wholesale, an equal score from
// another cluster extends it, a lower score is ignored.
func (h Hits) Update(cluster string, pr reads.PairedRead, score int) {
	hit, ok := h[pr.Name]
	switch {
	case !ok:
		h[pr.Name] = &Hit{Score: score, Aln: map[string]reads.PairedRead{cluster: pr}}
	case score > hit.Score:
		hit.Score = score
		hit.Aln = map[string]reads.PairedRead{cluster: pr}
	case score == hit.Score:
		hit.Aln[cluster] = pr
	}
}

// ScanCluster streams one cluster's BAM file into the accumulator,
// dropping fragments below the percent-identity threshold, and records
// the cluster's references in refs.
func ScanCluster(cluster, bamPath string, minPID float64, hits Hits, refs RefMap) error {
	b, err := reads.OpenBamFile(bamPath)
	if err != nil {
		return err
	}
	defer b.Close()

	refs.AddHeader(cluster, b.Header())

	sc := reads.NewPairScanner(b)
	for sc.Scan() {
		pr := sc.Pair()
		pid, err := reads.PercentIdentity(pr)
		if err != nil {
			return err
		}
		if pid < minPID {
			continue
		}
		hits.Update(cluster, pr, reads.Score(pr))
	}
	return sc.Err()
}

// ScanClusters finds the top-scoring alignments for each read across
// all selected genome clusters. A cluster without a BAM file is
// skipped with a warning.
func ScanClusters(clusters []string, bamDir string, minPID float64) (Hits, RefMap, error) {
	hits := make(Hits)
	refs := make(RefMap)
	for _, cluster := range clusters {
		bamPath := filepath.Join(bamDir, cluster+".bam")
		if _, err := os.Stat(bamPath); os.IsNotExist(err) {
			midas.Warn.Printf("bam file not found for genome cluster %s, skipping", cluster)
			continue
		}
		if err := ScanCluster(cluster, bamPath, minPID, hits, refs); err != nil {
			return nil, nil, err
		}
	}
	return hits, refs, nil
}
