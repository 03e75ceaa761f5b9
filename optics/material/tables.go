package material

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Embedded reference tables, one CSV per material with the header
// "wavelength,n,k" and wavelengths in metres.
//
//go:embed data/*.csv
var tableFS embed.FS

var tableColumns = map[string]series.Type{
	"wavelength": series.Float,
	"n":          series.Float,
	"k":          series.Float,
}

// ReadTable parses a "wavelength,n,k" CSV document into a table model.
func ReadTable(label string, raw []byte) (*Tabulated, error) {
	df := dataframe.ReadCSV(bytes.NewReader(raw), dataframe.WithTypes(tableColumns))
	if df.Err != nil {
		return nil, invalidModel(label, "parse table: %v", df.Err)
	}

	for _, name := range []string{"wavelength", "n", "k"} {
		if !hasColumn(df, name) {
			return nil, invalidModel(label, "table has no %q column", name)
		}
	}

	return NewTabulated(label, df.Col("wavelength").Float(), df.Col("n").Float(), df.Col("k").Float())
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func loadEmbedded(label, file string) (*Tabulated, error) {
	raw, err := tableFS.ReadFile("data/" + file)
	if err != nil {
		return nil, fmt.Errorf("material: %s: %w", label, err)
	}
	return ReadTable(label, raw)
}
