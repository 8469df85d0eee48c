// Package species reads genome-cluster abundance profiles produced by
// the upstream species profiler.
package species

import (
	"fmt"
	"sort"
	"strconv"

	midas "github.com/yi1873/MIDAS"
)

// Record is one row of the species profile table.
type Record struct {
	ClusterID   string
	MappedReads int
	PropMapped  float64
	CellCount   float64
	PropCells   float64
	AvgPID      float64
}

// ReadProfile parses a species profile table. The first line is a
// header.
func ReadProfile(fileName string) ([]Record, error) {
	rows, err := midas.ReadTab(fileName)
	if err != nil {
		return nil, err
	}

	var records []Record
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 6 {
			return nil, fmt.Errorf("species: line %d of %s has %d columns, want 6", i+1, fileName, len(row))
		}
		r := Record{ClusterID: row[0]}
		if r.MappedReads, err = strconv.Atoi(row[1]); err != nil {
			return nil, fmt.Errorf("species: line %d of %s: %v", i+1, fileName, err)
		}
		if r.PropMapped, err = strconv.ParseFloat(row[2], 64); err != nil {
			return nil, fmt.Errorf("species: line %d of %s: %v", i+1, fileName, err)
		}
		if r.CellCount, err = strconv.ParseFloat(row[3], 64); err != nil {
			return nil, fmt.Errorf("species: line %d of %s: %v", i+1, fileName, err)
		}
		if r.PropCells, err = strconv.ParseFloat(row[4], 64); err != nil {
			return nil, fmt.Errorf("species: line %d of %s: %v", i+1, fileName, err)
		}
		if r.AvgPID, err = strconv.ParseFloat(row[5], 64); err != nil {
			return nil, fmt.Errorf("species: line %d of %s: %v", i+1, fileName, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// Abundances maps a genome cluster to its relative abundance.
type Abundances map[string]float64

// SelectClusters keeps clusters whose proportion of cells reaches the
// abundance threshold.
func SelectClusters(records []Record, minAbund float64) Abundances {
	abund := make(Abundances)
	for _, r := range records {
		if r.PropCells >= minAbund {
			abund[r.ClusterID] = r.PropCells
		}
	}
	return abund
}

// Clusters returns the cluster ids, sorted.
func (a Abundances) Clusters() []string {
	clusters := make([]string, 0, len(a))
	for id := range a {
		clusters = append(clusters, id)
	}
	sort.Strings(clusters)
	return clusters
}
