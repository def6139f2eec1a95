package decode

import (
	"context"
	"fmt"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-reorgscan/internal/blocklog/model"
)

// FileSource loads a block log batch from a JSON file.
type FileSource struct {
	path    string
	decoder *Decoder
}

// NewFileSource returns a FileSource reading path with decoder.
func NewFileSource(path string, decoder *Decoder) *FileSource {
	if decoder == nil {
		decoder = &Decoder{}
	}
	return &FileSource{path: path, decoder: decoder}
}

// Load opens and decodes the file.
func (s *FileSource) Load(ctx context.Context) (model.Blockchain, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open block log: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	chain, err := s.decoder.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}
	return chain, nil
}
