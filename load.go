package hclust

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// LoadMatrix reads a distance table from a file, decompressing it
// transparently when the name ends in .gz, .zst or .lz4. full selects the
// full symmetric format; otherwise the table must be lower-triangular.
func LoadMatrix(path string, full bool) (*DistanceMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("hclust: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("hclust: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("hclust: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".lz4":
		r = lz4.NewReader(f)
	}

	if full {
		return ReadFullMatrix(r)
	}
	return ReadMatrix(r)
}
