package reassign

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/biogo/hts/sam"

	"github.com/yi1873/MIDAS/reads"
)

func mkRef(t *testing.T, name string, length int) *sam.Reference {
	t.Helper()
	ref, err := sam.NewReference(name, "", "", length, nil, nil)
	if err != nil {
		t.Fatalf("NewReference(%s): %v", name, err)
	}
	return ref
}

func mkHeader(t *testing.T, refs ...*sam.Reference) *sam.Header {
	t.Helper()
	h, err := sam.NewHeader(nil, refs)
	if err != nil {
		t.Fatalf("NewHeader: %v", err)
	}
	return h
}

func mkRecord(t *testing.T, name string, ref *sam.Reference, pos, length, nm int, flags sam.Flags) *sam.Record {
	t.Helper()
	aux, err := sam.NewAux(sam.Tag{'N', 'M'}, uint8(nm))
	if err != nil {
		t.Fatalf("NewAux: %v", err)
	}
	return &sam.Record{
		Name:      name,
		Ref:       ref,
		Pos:       pos,
		MapQ:      60,
		Cigar:     sam.Cigar{sam.NewCigarOp(sam.CigarMatch, length)},
		Flags:     flags,
		MatePos:   -1,
		Seq:       sam.NewSeq([]byte(strings.Repeat("A", length))),
		Qual:      bytes.Repeat([]byte{40}, length),
		AuxFields: []sam.Aux{aux},
	}
}

func single(t *testing.T, name string, length, nm int) reads.PairedRead {
	t.Helper()
	r := mkRecord(t, name, nil, 0, length, nm, sam.Paired|sam.MateUnmapped|sam.Read1)
	return reads.PairedRead{Name: name, Records: []*sam.Record{r}}
}

func TestHitsUpdate(t *testing.T) {
	hits := make(Hits)

	// First sighting.
	hits.Update("c1", single(t, "q", 100, 5), 95)
	if hit := hits["q"]; hit.Score != 95 || len(hit.Aln) != 1 {
		t.Fatalf("after first sighting: %+v", hit)
	}

	// Lower score ignored.
	hits.Update("c2", single(t, "q", 100, 10), 90)
	if hit := hits["q"]; hit.Score != 95 || len(hit.Aln) != 1 {
		t.Fatalf("lower score changed the record: %+v", hit)
	}

	// Equal score extends.
	hits.Update("c3", single(t, "q", 100, 5), 95)
	if hit := hits["q"]; hit.Score != 95 || len(hit.Aln) != 2 {
		t.Fatalf("equal score did not extend: %+v", hit)
	}

	// Strictly higher score replaces wholesale.
	hits.Update("c4", single(t, "q", 100, 1), 99)
	hit := hits["q"]
	if hit.Score != 99 || len(hit.Aln) != 1 {
		t.Fatalf("higher score did not replace: %+v", hit)
	}
	if _, ok := hit.Aln["c4"]; !ok {
		t.Errorf("winning cluster missing: %v", hit.Aln)
	}
}

func TestHitsOrderIndependent(t *testing.T) {
	type obs struct {
		cluster string
		nm      int
	}
	observations := []obs{
		{"c1", 5},
		{"c2", 5},
		{"c3", 2},
		{"c4", 8},
	}

	fold := func(order []obs) Hits {
		hits := make(Hits)
		for _, o := range order {
			pr := single(t, "q", 100, o.nm)
			hits.Update(o.cluster, pr, 100-o.nm)
		}
		return hits
	}

	forward := fold(observations)
	reversed := fold([]obs{observations[3], observations[2], observations[1], observations[0]})

	fc, rc := forward["q"], reversed["q"]
	if fc.Score != rc.Score {
		t.Fatalf("scores differ: %d vs %d", fc.Score, rc.Score)
	}
	fClusters := make([]string, 0)
	for c := range fc.Aln {
		fClusters = append(fClusters, c)
	}
	rClusters := make([]string, 0)
	for c := range rc.Aln {
		rClusters = append(rClusters, c)
	}
	if len(fClusters) != 1 || len(rClusters) != 1 || fClusters[0] != "c3" || rClusters[0] != "c3" {
		t.Errorf("best cluster depends on scan order: %v vs %v", fClusters, rClusters)
	}
}

func TestRefMapAddHeader(t *testing.T) {
	h := mkHeader(t,
		mkRef(t, "gnl|s1|extra", 1000),
		mkRef(t, "plain", 500),
	)
	refs := make(RefMap)
	refs.AddHeader("c1", h)

	want := RefMap{
		{Cluster: "c1", RefID: 0}: "s1",
		{Cluster: "c1", RefID: 1}: "plain",
	}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("RefMap = %v, want %v", refs, want)
	}
}

func TestSummarize(t *testing.T) {
	hits := make(Hits)
	hits.Update("c1", single(t, "a", 100, 0), 100)
	hits.Update("c1", single(t, "b", 100, 0), 100)
	hits.Update("c2", single(t, "b", 100, 0), 100)
	hits.Update("c1", single(t, "c", 100, 0), 100)
	hits.Update("c2", single(t, "c", 100, 0), 100)
	hits.Update("c3", single(t, "c", 100, 0), 100)

	s := Summarize(hits)
	if s.One != 1 || s.Two != 1 || s.More != 1 || s.Total() != 3 {
		t.Errorf("Summary = %+v", s)
	}

	var buf bytes.Buffer
	s.Report(&buf, 10)
	out := buf.String()
	if !strings.Contains(out, "3 reads assigned to any genome cluster (0.30)") {
		t.Errorf("unexpected report:\n%s", out)
	}
}
