package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/yi1873/MIDAS/pangenome"
)

// Command for computing pangene coverage per genome cluster from the
// reassigned per-genome BAM files.
type cmdCov struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdCov) Run(args []string) {
	cmd.ParseConfig()

	reassignedDir := filepath.Join(cmd.outDir, "reassigned")
	entries, err := os.ReadDir(reassignedDir)
	if err != nil {
		ERROR.Fatalf("no reassigned reads found, run map first: %v", err)
	}
	MakeDir(filepath.Join(cmd.outDir, "coverage"))

	start := time.Now()
	for _, ent := range entries {
		if !ent.IsDir() {
			continue
		}
		cluster := ent.Name()
		bedPath := filepath.Join(cmd.dbDir, cluster, cluster+".bed.gz")
		cov, err := pangenome.ClusterCoverage(bedPath, filepath.Join(reassignedDir, cluster))
		if err != nil {
			ERROR.Fatalln(err)
		}
		outPath := filepath.Join(cmd.outDir, "coverage", cluster+".cov.gz")
		if err := pangenome.WriteCoverageFile(outPath, cov); err != nil {
			ERROR.Fatalln(err)
		}
		INFO.Printf("wrote coverage of %d pangenes for genome cluster %s", len(cov), cluster)
	}
	INFO.Printf("computed pangenome coverage in %.1f minutes", time.Since(start).Minutes())
}
