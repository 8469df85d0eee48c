package main

import (
	"log"
	"os"

	"github.com/rakyll/command"

	midas "github.com/yi1873/MIDAS"
)

var (
	INFO  *log.Logger
	WARN  *log.Logger
	ERROR *log.Logger
)

func main() {
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	WARN = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)

	command.On("align", "align reads to the selected genome clusters",
		&cmdAlign{}, []string{})
	command.On("map", "assign reads to genome clusters and split them per genome",
		&cmdMap{}, []string{})
	command.On("cov", "compute pangenome coverage of reassigned reads",
		&cmdCov{}, []string{})
	command.ParseAndRun()
}

func registerLogger() {
	midas.Info = INFO
	midas.Warn = WARN
}
