package pangenome

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// WriteCoverage writes a coverage table sorted by pangene id, one
// pangene and its coverage per line, tab separated, no header.
func WriteCoverage(w io.Writer, cov map[string]float64) error {
	pangenes := make([]string, 0, len(cov))
	for pangene := range cov {
		pangenes = append(pangenes, pangene)
	}
	sort.Strings(pangenes)

	for _, pangene := range pangenes {
		line := pangene + "\t" + strconv.FormatFloat(cov[pangene], 'g', -1, 64) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteCoverageFile writes a gzip-compressed coverage table.
func WriteCoverageFile(fileName string, cov map[string]float64) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	gz := gzip.NewWriter(f)

	if err := WriteCoverage(gz, cov); err != nil {
		gz.Close()
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pangenome: closing %s: %v", fileName, err)
	}
	return nil
}
