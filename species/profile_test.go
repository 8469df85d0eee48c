package species

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const profileText = "cluster_id\tmapped_reads\tprop_mapped\tcell_count\tprop_cells\tavg_pid\n" +
	"57955\t1000\t0.50\t12.3\t0.40\t97.5\n" +
	"58035\t600\t0.30\t6.1\t0.35\t96.0\n" +
	"58070\t40\t0.02\t0.4\t0.01\t94.2\n"

func writeProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "species")
	if err := os.WriteFile(path, []byte(profileText), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadProfile(t *testing.T) {
	records, err := ReadProfile(writeProfile(t))
	if err != nil {
		t.Fatalf("ReadProfile: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	want := Record{ClusterID: "57955", MappedReads: 1000, PropMapped: 0.5, CellCount: 12.3, PropCells: 0.4, AvgPID: 97.5}
	if records[0] != want {
		t.Errorf("record 0 = %+v, want %+v", records[0], want)
	}
}

func TestReadProfileMissing(t *testing.T) {
	if _, err := ReadProfile(filepath.Join(t.TempDir(), "no-such-file")); err == nil {
		t.Error("expected error for missing profile")
	}
}

func TestSelectClusters(t *testing.T) {
	records, err := ReadProfile(writeProfile(t))
	if err != nil {
		t.Fatal(err)
	}
	abund := SelectClusters(records, 0.05)
	want := Abundances{"57955": 0.4, "58035": 0.35}
	if !reflect.DeepEqual(abund, want) {
		t.Errorf("SelectClusters = %v, want %v", abund, want)
	}
	if got := abund.Clusters(); !reflect.DeepEqual(got, []string{"57955", "58035"}) {
		t.Errorf("Clusters = %v", got)
	}
}
