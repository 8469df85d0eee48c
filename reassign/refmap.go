// Package reassign picks the best genome cluster for every aligned
// read and splits the chosen alignments into per-genome BAM files.
package reassign

import (
	"github.com/biogo/hts/sam"

	midas "github.com/yi1873/MIDAS"
)

// RefKey identifies an aligner reference within one cluster's BAM.
type RefKey struct {
	Cluster string
	RefID   int
}

// RefMap resolves the aligner's numeric reference ids to scaffold
// names. It is filled once per BAM header instead of re-parsing
// reference names per alignment.
type RefMap map[RefKey]string

// AddHeader records every reference of a cluster's BAM header.
func (m RefMap) AddHeader(cluster string, h *sam.Header) {
	for _, ref := range h.Refs() {
		m[RefKey{Cluster: cluster, RefID: ref.ID()}] = midas.ScaffoldName(ref.Name())
	}
}
