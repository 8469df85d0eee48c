package reads

import (
	"github.com/biogo/hts/sam"
)

// A container for a group of SAM records.
type SamRecords []*sam.Record

// PairedRead is one logical fragment: a single record when the mate is
// unmapped, or both mated records of a paired-end read.
type PairedRead struct {
	Name    string
	Records []*sam.Record
}

// Single reports whether only one end of the fragment was mapped.
func (pr PairedRead) Single() bool {
	return len(pr.Records) == 1
}
