package pangenome

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func writeGzFile(t *testing.T, path, text string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(text)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

const bedHeader = "genome_id\tpangene_id\ttype\tgene_id\tscaffold_id\tstart\tend\n"

func TestReadBed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c1.bed.gz")
	writeGzFile(t, path, bedHeader+
		"g1\tp1\tCDS\tgene1\ts1\t1\t300\n"+
		"g1\tp2\tRNA\tgene2\ts1\t200\t100\n")

	intervals, err := ReadBed(path)
	if err != nil {
		t.Fatalf("ReadBed: %v", err)
	}
	if len(intervals) != 2 {
		t.Fatalf("got %d intervals, want 2", len(intervals))
	}

	forward := intervals[0]
	if forward.PangeneID != "p1_CDS" {
		t.Errorf("pangene id = %s, want p1_CDS", forward.PangeneID)
	}
	if forward.Start != 0 || forward.End != 299 || forward.Length() != 300 {
		t.Errorf("forward interval = [%d,%d] len %d", forward.Start, forward.End, forward.Length())
	}

	// Reversed source coordinates are swapped during normalization.
	reversed := intervals[1]
	if reversed.Start != 99 || reversed.End != 199 {
		t.Errorf("reversed interval = [%d,%d], want [99,199]", reversed.Start, reversed.End)
	}
	if reversed.Length() != 101 {
		t.Errorf("reversed interval length = %d, want 101", reversed.Length())
	}
}

func TestLengths(t *testing.T) {
	intervals := []Interval{
		{GenomeID: "g1", PangeneID: "p1_CDS", ScaffoldID: "s1", Start: 0, End: 99},
		{GenomeID: "g2", PangeneID: "p2_CDS", ScaffoldID: "s2", Start: 10, End: 10},
	}
	lengths := Lengths(intervals)
	if lengths["p1_CDS"] != 100 || lengths["p2_CDS"] != 1 {
		t.Errorf("Lengths = %v", lengths)
	}
}

func TestReadBedMissing(t *testing.T) {
	if _, err := ReadBed(filepath.Join(t.TempDir(), "nope.bed.gz")); err == nil {
		t.Error("expected error for missing bed file")
	}
}
