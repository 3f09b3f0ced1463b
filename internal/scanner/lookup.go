// Package scanner handles decoded barcodes: the lookup table used to
// pre-fill product forms and the feed that delivers decode results.
package scanner

import (
	"fmt"

	"github.com/rogerio-castellano/freshtrack/internal/models"
	"github.com/spf13/viper"
)

// ProductInfo is the partial product metadata known for a barcode.
type ProductInfo struct {
	Name     string          `json:"name" mapstructure:"name"`
	Category models.Category `json:"category" mapstructure:"category"`
}

// LookupTable maps barcodes to partial product metadata. Lookups are pure
// and side-effect free.
type LookupTable struct {
	entries map[string]ProductInfo
}

func NewLookupTable(entries map[string]ProductInfo) *LookupTable {
	if entries == nil {
		entries = map[string]ProductInfo{}
	}
	return &LookupTable{entries: entries}
}

// LoadLookupTable reads a barcode table file (yaml or json keyed by
// barcode). An empty path yields an empty table.
func LoadLookupTable(path string) (*LookupTable, error) {
	if path == "" {
		return NewLookupTable(nil), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read barcode table: %w", err)
	}

	entries := map[string]ProductInfo{}
	if err := v.Unmarshal(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse barcode table: %w", err)
	}
	return NewLookupTable(entries), nil
}

// Lookup returns the known metadata for a barcode, or false for unknown codes.
func (t *LookupTable) Lookup(code string) (ProductInfo, bool) {
	info, ok := t.entries[code]
	return info, ok
}
