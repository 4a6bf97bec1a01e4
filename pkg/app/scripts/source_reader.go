package scripts

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
)

// RawScript is one script file read from disk. It is never cached.
type RawScript struct {
	Path    string
	Content string
}

//go:generate mockery --name=SourceReader --dir=. --output=./mocks --filename=source_reader_mock.go --case=underscore --with-expecter
type SourceReader interface {
	Read(ctx context.Context, path string) (*RawScript, error)
	List(ctx context.Context, dir string) ([]os.FileInfo, error)
}

type sourceReader struct {
	fs afero.Fs
}

func NewSourceReader(fs afero.Fs) SourceReader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &sourceReader{fs: fs}
}

func (r *sourceReader) Read(_ context.Context, path string) (*RawScript, error) {
	content, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return &RawScript{Path: path, Content: string(content)}, nil
}

func (r *sourceReader) List(_ context.Context, dir string) ([]os.FileInfo, error) {
	entries, err := afero.ReadDir(r.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts directory %s: %w", dir, err)
	}
	return entries, nil
}
