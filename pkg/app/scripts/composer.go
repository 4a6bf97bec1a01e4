package scripts

import (
	"context"
	"errors"
	"fmt"
)

var ErrScannerScriptUnavailable = errors.New("front-end scanner script unavailable")

//go:generate mockery --name=Composer --dir=. --output=./mocks --filename=composer_mock.go --case=underscore --with-expecter
type Composer interface {
	Compose(ctx context.Context) (string, error)
}

type composer struct {
	aggregator  Aggregator
	reader      SourceReader
	scannerPath string
}

func NewComposer(aggregator Aggregator, reader SourceReader, scannerPath string) Composer {
	return &composer{
		aggregator:  aggregator,
		reader:      reader,
		scannerPath: scannerPath,
	}
}

// Compose returns the user scripts, the registry declaration and the scanner
// script, in that order. A missing scanner script fails the whole payload.
func (c *composer) Compose(ctx context.Context) (string, error) {
	scanner, err := c.reader.Read(ctx, c.scannerPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScannerScriptUnavailable, err)
	}
	return c.aggregator.Aggregate(ctx).Render() + scanner.Content, nil
}
