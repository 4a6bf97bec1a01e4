package scripts

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Aggregation is the result of one pass over the user scripts directory.
type Aggregation struct {
	Code     string
	Registry []string
}

// Render returns the wrapped scripts followed by the registry declaration.
func (a Aggregation) Render() string {
	return a.Code + "const " + RegistryIdentifier + " = [ " + strings.Join(a.Registry, ", ") + "];"
}

//go:generate mockery --name=Aggregator --dir=. --output=./mocks --filename=aggregator_mock.go --case=underscore --with-expecter
type Aggregator interface {
	Aggregate(ctx context.Context) Aggregation
}

type aggregator struct {
	reader SourceReader
	dir    string
	logger *logrus.Logger
	wrap   func(code string) WrappedScript
}

func NewAggregator(reader SourceReader, dir string, logger *logrus.Logger) Aggregator {
	return &aggregator{
		reader: reader,
		dir:    dir,
		logger: logger,
		wrap:   Wrap,
	}
}

// Aggregate never fails: a missing directory yields an empty aggregation and
// an unreadable file is skipped.
func (a *aggregator) Aggregate(ctx context.Context) Aggregation {
	entries, err := a.reader.List(ctx, a.dir)
	if err != nil {
		a.logger.WithError(err).WithField("dir", a.dir).Error("user scripts unavailable, injecting none")
		return Aggregation{Registry: []string{}}
	}

	var code strings.Builder
	registry := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		path := filepath.Join(a.dir, entry.Name())
		if entry.IsDir() {
			a.logger.WithField("path", path).Warn("skipping directory in user scripts folder")
			continue
		}

		raw, err := a.reader.Read(ctx, path)
		if err != nil {
			a.logger.WithError(err).WithField("path", path).Warn("skipping unreadable user script")
			continue
		}

		wrapped := a.wrap(raw.Content)
		for {
			if _, dup := seen[wrapped.FunctionName]; !dup {
				break
			}
			wrapped = a.wrap(raw.Content)
		}
		seen[wrapped.FunctionName] = struct{}{}

		code.WriteString(wrapped.Code)
		registry = append(registry, wrapped.FunctionName)
	}

	return Aggregation{Code: code.String(), Registry: registry}
}
