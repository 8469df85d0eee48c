package reads

// Alignment scoring from the aligner's edit-distance tags.

import (
	"fmt"

	"github.com/biogo/hts/sam"
)

var nmTag = sam.Tag{'N', 'M'}

// editDistance returns the value of a record's NM tag, or zero when
// the tag is absent.
func editDistance(r *sam.Record) int {
	aux := r.AuxFields.Get(nmTag)
	if aux == nil {
		return 0
	}
	switch v := aux.Value().(type) {
	case int8:
		return int(v)
	case uint8:
		return int(v)
	case int16:
		return int(v)
	case uint16:
		return int(v)
	case int32:
		return int(v)
	case uint32:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Score is the alignment score of a fragment: the sum over its mapped
// ends of query length minus edit distance. One edit costs one point,
// so longer and more accurate mappings score higher.
func Score(pr PairedRead) int {
	score := 0
	for _, r := range pr.Records {
		score += r.Seq.Length - editDistance(r)
	}
	return score
}

// PercentIdentity is the fraction of aligned bases matching the
// reference, scaled to 100 and summed across both ends of a fragment.
// A fragment with zero total query length has no defined identity.
func PercentIdentity(pr PairedRead) (float64, error) {
	var length, edit int
	for _, r := range pr.Records {
		length += r.Seq.Length
		edit += editDistance(r)
	}
	if length == 0 {
		return 0, fmt.Errorf("reads: zero-length query %s", pr.Name)
	}
	return 100 * float64(length-edit) / float64(length), nil
}
