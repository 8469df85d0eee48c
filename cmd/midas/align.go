package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// Command for aligning reads to the selected genome clusters with
// bowtie2, one BAM file per cluster.
type cmdAlign struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdAlign) Run(args []string) {
	cmd.ParseConfig()
	abund := cmd.selectClusters()
	MakeDir(filepath.Join(cmd.outDir, "bam"))

	start := time.Now()
	for _, cluster := range abund.Clusters() {
		cmd.align(cluster)
	}
	INFO.Printf("aligned reads to %d genome clusters in %.1f minutes",
		len(abund), time.Since(start).Minutes())
}

// bowtie2 options:
//  --no-unal : Suppress SAM records for reads that failed to align.
//  --very-sensitive : preset, slower but most accurate.
//  -u <int> : Align only the first <int> reads.
//  -p <int> : Launch parallel search threads.
//  -1/-2 <file> : paired-end mates, -U <file> : unpaired reads.
// The SAM stream is piped through samtools view -b for BAM output.
func (cmd *cmdAlign) align(cluster string) {
	indexBase := filepath.Join(cmd.dbDir, cluster, cluster)
	options := []string{
		"--no-unal",
		"--very-sensitive",
		"-p", strconv.Itoa(cmd.threads),
		"-x", indexBase,
	}
	if cmd.maxReads > 0 {
		options = append(options, []string{"-u", strconv.Itoa(cmd.maxReads)}...)
	}
	if cmd.reads1 != "" {
		options = append(options, []string{"-1", cmd.reads1, "-2", cmd.reads2}...)
	} else {
		options = append(options, []string{"-U", cmd.single}...)
	}

	outPath := filepath.Join(cmd.outDir, "bam", cluster+".bam")
	outFile, err := os.Create(outPath)
	if err != nil {
		ERROR.Fatalf("cannot create %s: %v", outPath, err)
	}
	defer outFile.Close()

	bowtie := exec.Command("bowtie2", options...)
	view := exec.Command("samtools", "view", "-b", "-")

	pipe, err := bowtie.StdoutPipe()
	if err != nil {
		ERROR.Fatalln(err)
	}
	view.Stdin = pipe
	view.Stdout = outFile

	bowtieErr := new(bytes.Buffer)
	viewErr := new(bytes.Buffer)
	bowtie.Stderr = bowtieErr
	view.Stderr = viewErr

	if err := bowtie.Start(); err != nil {
		ERROR.Fatalf("bowtie2: %v", err)
	}
	if err := view.Start(); err != nil {
		ERROR.Fatalf("samtools: %v", err)
	}
	if err := bowtie.Wait(); err != nil {
		ERROR.Println(bowtieErr.String())
		ERROR.Fatalf("bowtie2 failed for genome cluster %s: %v", cluster, err)
	}
	if err := view.Wait(); err != nil {
		ERROR.Println(viewErr.String())
		ERROR.Fatalf("samtools failed for genome cluster %s: %v", cluster, err)
	}
	INFO.Printf("aligned reads to genome cluster %s", cluster)
}
