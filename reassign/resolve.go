package reassign

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/yi1873/MIDAS/reads"
	"github.com/yi1873/MIDAS/species"
)

// Assignment is a query's resolved genome cluster and fragment.
type Assignment struct {
	Cluster string
	Pair    reads.PairedRead
}

// Resolve turns best hits into single assignments. A query tied across
// several clusters is drawn at random, weighted by the clusters'
// relative abundances; repeated runs may place such reads differently
// unless the same random source is supplied. Queries are resolved in
// sorted order so a fixed seed reproduces the same assignments.
func Resolve(hits Hits, abund species.Abundances, src rand.Source) (map[string]Assignment, error) {
	queries := make([]string, 0, len(hits))
	for q := range hits {
		queries = append(queries, q)
	}
	sort.Strings(queries)

	assigned := make(map[string]Assignment, len(hits))
	for _, q := range queries {
		hit := hits[q]
		if len(hit.Aln) == 1 {
			for cluster, pr := range hit.Aln {
				assigned[q] = Assignment{Cluster: cluster, Pair: pr}
			}
			continue
		}

		clusters := make([]string, 0, len(hit.Aln))
		for cluster := range hit.Aln {
			clusters = append(clusters, cluster)
		}
		sort.Strings(clusters)

		weights := make([]float64, len(clusters))
		for i, cluster := range clusters {
			a, ok := abund[cluster]
			if !ok {
				return nil, fmt.Errorf("reassign: no abundance for genome cluster %s tied on query %s", cluster, q)
			}
			weights[i] = a
		}

		w := sampleuv.NewWeighted(weights, src)
		i, ok := w.Take()
		if !ok {
			return nil, fmt.Errorf("reassign: cannot draw a cluster for query %s", q)
		}
		assigned[q] = Assignment{Cluster: clusters[i], Pair: hit.Aln[clusters[i]]}
	}
	return assigned, nil
}
