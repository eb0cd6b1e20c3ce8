package logo

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/jimlawless/whereami"
)

// FileSource читает логотип с диска.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	if f.path == "" {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrLogoNotFound)
	}

	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, e.Wrap(f.path, e.ErrLogoNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return file, nil
}
