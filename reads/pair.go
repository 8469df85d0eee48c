package reads

import (
	"io"

	"github.com/biogo/hts/sam"
)

// RecordReader is the record-streaming side of bam.Reader and
// sam.Reader.
type RecordReader interface {
	Read() (*sam.Record, error)
}

// PairScanner groups consecutive records of one alignment stream into
// paired reads. A record whose mate is unmapped forms a fragment on
// its own; otherwise two consecutive records form one fragment. The
// aligner emits both ends of a pair back to back, so no sorting by
// name is needed within a stream.
type PairScanner struct {
	rd      RecordReader
	pending *sam.Record
	pair    PairedRead
	err     error
}

func NewPairScanner(rd RecordReader) *PairScanner {
	return &PairScanner{rd: rd}
}

// Scan advances to the next complete fragment. It returns false at the
// end of the stream or on error; a trailing record without its mate is
// dropped.
func (s *PairScanner) Scan() bool {
	for {
		r, err := s.rd.Read()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}
		if r.Flags&sam.MateUnmapped != 0 {
			s.pair = PairedRead{Name: r.Name, Records: []*sam.Record{r}}
			return true
		}
		if s.pending == nil {
			s.pending = r
			continue
		}
		s.pair = PairedRead{Name: s.pending.Name, Records: []*sam.Record{s.pending, r}}
		s.pending = nil
		return true
	}
}

// Pair returns the fragment found by the last call to Scan.
func (s *PairScanner) Pair() PairedRead {
	return s.pair
}

func (s *PairScanner) Err() error {
	return s.err
}
