// Package midas assigns short-read alignments to genome clusters and
// computes per-pangene coverage across a pangenome.
//
// Reads are expected to be pre-aligned against one bowtie2 index per
// genome cluster, producing one BAM file per cluster. The packages of
// this module pick the best-scoring cluster per read, resolve
// ambiguous reads by cluster abundance, split the alignments into
// per-genome BAM files, and count the base pairs landing on annotated
// pangene intervals.
package midas

import (
	"log"
	"os"
)

var (
	Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
)
