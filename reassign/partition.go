package reassign

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/hts/bam"

	midas "github.com/yi1873/MIDAS"
	"github.com/yi1873/MIDAS/genome"
	"github.com/yi1873/MIDAS/reads"
)

// genomeWriter is one destination BAM stream opened with the cluster
// BAM's header as template.
type genomeWriter struct {
	w *bam.Writer
	f *os.File
}

func (g *genomeWriter) Close() error {
	err := g.w.Close()
	if err2 := g.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Partition routes every resolved read's records into one BAM file per
// genome under outDir/<cluster>/<genome>.bam. Destination headers are
// inherited from the cluster's source BAM in bamDir; genomes are
// discovered through each cluster's genome_to_scaffold table in dbDir.
// All destination streams are flushed and closed before Partition
// returns, so coverage counting can read them afterwards.
func Partition(assigned map[string]Assignment, refs RefMap, bamDir, dbDir, outDir string) error {
	entries, err := os.ReadDir(bamDir)
	if err != nil {
		return err
	}

	writers := make(map[string]*genomeWriter)
	scaffoldToGenome := make(genome.ScaffoldMap)
	defer func() {
		for _, gw := range writers {
			gw.Close()
		}
	}()

	for _, ent := range entries {
		if !strings.HasSuffix(ent.Name(), ".bam") {
			continue
		}
		cluster := strings.TrimSuffix(ent.Name(), ".bam")

		// Template header from the cluster's source BAM.
		template, err := reads.OpenBamFile(filepath.Join(bamDir, ent.Name()))
		if err != nil {
			midas.Warn.Printf("cannot open source bam for genome cluster %s, skipping: %v", cluster, err)
			continue
		}
		header := template.Header()
		template.Close()

		sm, err := genome.ReadScaffoldMap(filepath.Join(dbDir, cluster, cluster+".genome_to_scaffold.gz"))
		if err != nil {
			return err
		}
		for scaffold, genomeID := range sm {
			scaffoldToGenome[scaffold] = genomeID
		}

		clusterDir := filepath.Join(outDir, cluster)
		if err := os.MkdirAll(clusterDir, 0755); err != nil {
			return err
		}
		for _, genomeID := range sm.Genomes() {
			f, err := os.Create(filepath.Join(clusterDir, genomeID+".bam"))
			if err != nil {
				return err
			}
			w, err := bam.NewWriter(f, header, 1)
			if err != nil {
				f.Close()
				return err
			}
			writers[genomeID] = &genomeWriter{w: w, f: f}
		}
	}

	for query, a := range assigned {
		for _, r := range a.Pair.Records {
			scaffold, ok := refs[RefKey{Cluster: a.Cluster, RefID: r.RefID()}]
			if !ok {
				return fmt.Errorf("reassign: unknown reference %d in cluster %s for query %s", r.RefID(), a.Cluster, query)
			}
			genomeID, ok := scaffoldToGenome[scaffold]
			if !ok {
				return fmt.Errorf("reassign: scaffold %s of cluster %s not in any genome", scaffold, a.Cluster)
			}
			gw, ok := writers[genomeID]
			if !ok {
				return fmt.Errorf("reassign: no output stream for genome %s", genomeID)
			}
			if err := gw.w.Write(r); err != nil {
				return err
			}
		}
	}

	var closeErr error
	for genomeID, gw := range writers {
		if err := gw.Close(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("reassign: closing output for genome %s: %v", genomeID, err)
		}
		delete(writers, genomeID)
	}
	return closeErr
}
