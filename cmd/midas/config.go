package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/yi1873/MIDAS/species"
)

// Config shared by all pipeline subcommands, read from flags and a
// configure file.
type cmdConfig struct {
	// Flags.
	workspace *string // workspace.
	config    *string // configure file name.

	// Data directories.
	dbDir  string // genome cluster database folder.
	outDir string // output folder.

	// Sequence input.
	reads1   string // paired-end read file 1.
	reads2   string // paired-end read file 2.
	single   string // unpaired read file.
	maxReads int    // max reads to align per cluster, 0 for all.

	// Thresholds and knobs.
	pid     float64 // minimum percent identity between read and reference.
	abund   float64 // abundance threshold for selecting genome clusters.
	seed    int64   // seed for tie resolution, 0 for time-based.
	threads int     // bowtie2 threads.
}

func (cmd *cmdConfig) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.workspace = fs.String("w", "", "workspace")
	cmd.config = fs.String("c", "config", "configure file name")
	return fs
}

// ParseConfig reads the configure file from the workspace.
func (cmd *cmdConfig) ParseConfig() {
	viper.SetConfigName(*cmd.config)
	viper.AddConfigPath(*cmd.workspace)
	viper.ReadInConfig()

	viper.SetDefault("map.pid", 90.0)
	viper.SetDefault("species.abundance", 0.05)
	viper.SetDefault("bowtie2.threads", 1)

	cmd.dbDir = viper.GetString("db")
	cmd.outDir = viper.GetString("out")
	cmd.reads1 = viper.GetString("reads.paired1")
	cmd.reads2 = viper.GetString("reads.paired2")
	cmd.single = viper.GetString("reads.single")
	cmd.maxReads = viper.GetInt("reads.max")
	cmd.pid = viper.GetFloat64("map.pid")
	cmd.abund = viper.GetFloat64("species.abundance")
	cmd.seed = viper.GetInt64("map.seed")
	cmd.threads = viper.GetInt("bowtie2.threads")

	if cmd.outDir == "" {
		cmd.outDir = *cmd.workspace
	}
	if cmd.threads <= 0 {
		cmd.threads = 1
	}

	registerLogger()
}

// selectClusters loads the species profile of the output directory and
// keeps the genome clusters above the abundance threshold.
func (cmd *cmdConfig) selectClusters() species.Abundances {
	profilePath := filepath.Join(cmd.outDir, "species")
	records, err := species.ReadProfile(profilePath)
	if err != nil {
		ERROR.Fatalf("could not locate species profile %s: %v", profilePath, err)
	}
	abund := species.SelectClusters(records, cmd.abund)
	if len(abund) == 0 {
		WARN.Printf("no genome cluster passes the abundance threshold %.3f", cmd.abund)
	}
	return abund
}

func MakeDir(d string) {
	if err := os.MkdirAll(d, 0755); err != nil {
		ERROR.Fatalln(err)
	}
}
