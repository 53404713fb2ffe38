package rtree

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/kass/matchmap/pkg/models"
)

// CatalogData represents the serializable form of a catalog index
type CatalogData struct {
	Name    string                 `json:"name"`
	Entries []*models.CatalogEntry `json:"entries"`
	Count   int64                  `json:"count"`
}

// Encode writes the index entries to w using gob encoding
func (g *GeoIndex) Encode(w io.Writer, name string) error {
	entries := g.Entries()
	data := CatalogData{
		Name:    name,
		Entries: entries,
		Count:   int64(len(entries)),
	}
	if err := gob.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

// SaveToFile saves the index entries to a binary file
func (g *GeoIndex) SaveToFile(filename, name string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return g.Encode(file, name)
}

// Decode reads a catalog written by Encode
func Decode(r io.Reader) (*CatalogData, error) {
	var data CatalogData
	if err := gob.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if data.Count != int64(len(data.Entries)) {
		return nil, fmt.Errorf("catalog %q is truncated: header says %d entries, found %d",
			data.Name, data.Count, len(data.Entries))
	}
	return &data, nil
}

// LoadFromFile reads the catalog entries stored in filename
func LoadFromFile(filename string) (*CatalogData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
