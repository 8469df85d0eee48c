package reads

import (
	"io"
	"os"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// BamFile is an open BAM file ready for streaming reads.
type BamFile struct {
	*bam.Reader
	f *os.File
}

// OpenBamFile opens a BAM file for reading.
func OpenBamFile(fileName string) (*BamFile, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	rd, err := bam.NewReader(f, 1)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &BamFile{Reader: rd, f: f}, nil
}

func (b *BamFile) Close() error {
	err := b.Reader.Close()
	if err2 := b.f.Close(); err == nil {
		err = err2
	}
	return err
}

// ReadBamFile reads a whole BAM file and returns its header and
// records. NOT explicitly sorted.
func ReadBamFile(fileName string) (*sam.Header, SamRecords, error) {
	b, err := OpenBamFile(fileName)
	if err != nil {
		return nil, nil, err
	}
	defer b.Close()

	var records SamRecords
	for {
		r, err := b.Read()
		if err != nil {
			if err != io.EOF {
				return nil, nil, err
			}
			break
		}
		records = append(records, r)
	}

	return b.Header(), records, nil
}
