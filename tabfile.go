package midas

import (
	"compress/gzip"
	"encoding/csv"
	"os"
	"strings"
)

// ReadTab reads a tab-delimited table, transparently decompressing
// files with a .gz suffix. All rows are returned, header included;
// callers skip the header the same way they would with encoding/csv.
func ReadTab(fileName string) ([][]string, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rd *csv.Reader
	if strings.HasSuffix(fileName, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		rd = csv.NewReader(gz)
	} else {
		rd = csv.NewReader(f)
	}
	rd.Comma = '\t'
	rd.FieldsPerRecord = -1

	return rd.ReadAll()
}

// ScaffoldName extracts the scaffold id from a BAM reference name.
// Cluster databases name their references "<prefix>|<scaffold>|...";
// a name without separators is already the scaffold id.
func ScaffoldName(refName string) string {
	fields := strings.Split(refName, "|")
	if len(fields) > 1 {
		return fields[1]
	}
	return refName
}
