package scripts

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scriptsDir = "/zap/scripts/scripts/front-end"

var anyFunctionName = regexp.MustCompile(`f_[0-9]+`)

func newScriptsFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(scriptsDir, 0755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, scriptsDir+"/"+name, []byte(content), 0644))
	}
	return fs
}

// failingReader fails reads for one path and delegates everything else.
type failingReader struct {
	SourceReader
	failPath string
}

func (r *failingReader) Read(ctx context.Context, path string) (*RawScript, error) {
	if path == r.failPath {
		return nil, errors.New("permission denied")
	}
	return r.SourceReader.Read(ctx, path)
}

func TestAggregate_WrapsEveryScript(t *testing.T) {
	files := map[string]string{
		"a.js": "alert(1);",
		"b.js": "var x = 1;\nconsole.log(x);",
		"c.js": "",
	}
	logger, _ := test.NewNullLogger()
	agg := NewAggregator(NewSourceReader(newScriptsFs(t, files)), scriptsDir, logger)

	result := agg.Aggregate(context.Background())

	require.Len(t, result.Registry, len(files))
	distinct := make(map[string]struct{})
	for _, name := range result.Registry {
		distinct[name] = struct{}{}
	}
	assert.Len(t, distinct, len(files))

	assert.Equal(t, len(files), strings.Count(result.Code, "function f_"))

	remaining := make(map[string]int)
	for _, content := range files {
		remaining[content]++
	}
	for _, name := range result.Registry {
		matched := false
		for content, count := range remaining {
			if count > 0 && strings.Contains(result.Code, "function "+name+" () { "+content+" };") {
				remaining[content]--
				matched = true
				break
			}
		}
		assert.True(t, matched, "no verbatim body found for %s", name)
	}
}

func TestAggregate_RenderDeclaresRegistry(t *testing.T) {
	logger, _ := test.NewNullLogger()
	agg := NewAggregator(NewSourceReader(newScriptsFs(t, map[string]string{"one.js": "1;", "two.js": "2;"})), scriptsDir, logger)

	result := agg.Aggregate(context.Background())
	rendered := result.Render()

	assert.True(t, strings.HasPrefix(rendered, result.Code))
	assert.True(t, strings.HasSuffix(rendered, "const SCRIPTS = [ "+strings.Join(result.Registry, ", ")+"];"))
}

func TestAggregate_TwoPassesDifferOnlyInIdentifiers(t *testing.T) {
	logger, _ := test.NewNullLogger()
	agg := NewAggregator(NewSourceReader(newScriptsFs(t, map[string]string{"a.js": "a();", "b.js": "b();"})), scriptsDir, logger)

	first := agg.Aggregate(context.Background()).Render()
	second := agg.Aggregate(context.Background()).Render()

	assert.NotEqual(t, first, second)
	assert.Equal(t,
		anyFunctionName.ReplaceAllString(first, "f_ID"),
		anyFunctionName.ReplaceAllString(second, "f_ID"),
	)
}

func TestAggregate_EmptyDirectory(t *testing.T) {
	logger, _ := test.NewNullLogger()
	agg := NewAggregator(NewSourceReader(newScriptsFs(t, nil)), scriptsDir, logger)

	result := agg.Aggregate(context.Background())

	assert.Empty(t, result.Code)
	assert.Empty(t, result.Registry)
	assert.Equal(t, "const SCRIPTS = [ ];", result.Render())
}

func TestAggregate_MissingDirectoryDegradesAndLogs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	agg := NewAggregator(NewSourceReader(afero.NewMemMapFs()), "/does/not/exist", logger)

	result := agg.Aggregate(context.Background())

	assert.Empty(t, result.Code)
	assert.Empty(t, result.Registry)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestAggregate_UnreadableFileIsSkipped(t *testing.T) {
	logger, hook := test.NewNullLogger()
	fs := newScriptsFs(t, map[string]string{"good.js": "good();", "bad.js": "bad();"})
	reader := &failingReader{SourceReader: NewSourceReader(fs), failPath: scriptsDir + "/bad.js"}
	agg := NewAggregator(reader, scriptsDir, logger)

	result := agg.Aggregate(context.Background())

	require.Len(t, result.Registry, 1)
	assert.Contains(t, result.Code, "{ good(); }")
	assert.NotContains(t, result.Code, "bad();")

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["path"] == scriptsDir+"/bad.js" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestAggregate_SkipsSubdirectories(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fs := newScriptsFs(t, map[string]string{"a.js": "a();"})
	require.NoError(t, fs.MkdirAll(scriptsDir+"/nested", os.ModePerm))
	agg := NewAggregator(NewSourceReader(fs), scriptsDir, logger)

	result := agg.Aggregate(context.Background())

	assert.Len(t, result.Registry, 1)
}

func TestAggregate_RedrawsCollidingNames(t *testing.T) {
	logger, _ := test.NewNullLogger()
	names := []string{"f_1", "f_1", "f_2"}
	a := &aggregator{
		reader: NewSourceReader(newScriptsFs(t, map[string]string{"a.js": "a();", "b.js": "b();"})),
		dir:    scriptsDir,
		logger: logger,
	}
	a.wrap = func(code string) WrappedScript {
		name := names[0]
		names = names[1:]
		return WrapAs(name, code)
	}

	result := a.Aggregate(context.Background())

	assert.ElementsMatch(t, []string{"f_1", "f_2"}, result.Registry)
}
