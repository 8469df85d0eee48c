// Package genome maps scaffolds to the reference genomes of a genome
// cluster.
package genome

import (
	"fmt"
	"sort"

	midas "github.com/yi1873/MIDAS"
)

// ScaffoldMap maps a scaffold id to the genome it belongs to.
type ScaffoldMap map[string]string

// ReadScaffoldMap reads a cluster's genome_to_scaffold table, a
// gzip-compressed tab-delimited file with one header line and columns
// genome_id, scaffold_id.
func ReadScaffoldMap(fileName string) (ScaffoldMap, error) {
	rows, err := midas.ReadTab(fileName)
	if err != nil {
		return nil, err
	}

	m := make(ScaffoldMap)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			return nil, fmt.Errorf("genome: line %d of %s has %d columns, want 2", i+1, fileName, len(row))
		}
		m[row[1]] = row[0]
	}
	return m, nil
}

// Genomes returns the distinct genome ids of the map, sorted.
func (m ScaffoldMap) Genomes() []string {
	seen := make(map[string]bool)
	var genomes []string
	for _, genomeID := range m {
		if !seen[genomeID] {
			seen[genomeID] = true
			genomes = append(genomes, genomeID)
		}
	}
	sort.Strings(genomes)
	return genomes
}
