package main

import (
	"os"
	"path/filepath"
	"time"

	"golang.org/x/exp/rand"

	"github.com/yi1873/MIDAS/reassign"
)

// Command for assigning reads to their best genome cluster and
// splitting the assignments into per-genome BAM files.
type cmdMap struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdMap) Run(args []string) {
	cmd.ParseConfig()
	abund := cmd.selectClusters()
	bamDir := filepath.Join(cmd.outDir, "bam")

	start := time.Now()
	hits, refs, err := reassign.ScanClusters(abund.Clusters(), bamDir, cmd.pid)
	if err != nil {
		ERROR.Fatalln(err)
	}
	reassign.Summarize(hits).Report(os.Stdout, cmd.maxReads)

	seed := cmd.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	assigned, err := reassign.Resolve(hits, abund, rand.NewSource(uint64(seed)))
	if err != nil {
		ERROR.Fatalln(err)
	}

	outDir := filepath.Join(cmd.outDir, "reassigned")
	if err := reassign.Partition(assigned, refs, bamDir, cmd.dbDir, outDir); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("mapped %d reads in %.1f minutes", len(assigned), time.Since(start).Minutes())
}
