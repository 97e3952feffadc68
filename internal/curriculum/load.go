package curriculum

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadFile reads a JSON array of learning paths from path and builds a
// validated catalog from it.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curriculum file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a JSON array of learning paths from r.
func Load(r io.Reader) (*Catalog, error) {
	var paths []LearningPath
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&paths); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	return NewCatalog(paths)
}
