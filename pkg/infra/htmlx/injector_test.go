package htmlx

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadInsertionOffset(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{
			name:     "head with children",
			body:     "<html><head><title>t</title></head><body></body></html>",
			expected: len("<html><head>"),
		},
		{
			name:     "empty head",
			body:     "<!DOCTYPE html><html><head></head></html>",
			expected: len("<!DOCTYPE html><html><head>"),
		},
		{
			name:     "head with attributes and upper case",
			body:     "<HTML><HEAD profile=\"x\">\n<meta charset=utf-8></HEAD></HTML>",
			expected: len("<HTML><HEAD profile=\"x\">"),
		},
		{
			name:     "head inside comment is ignored",
			body:     "<!-- <head> --><html><head><title>t</title></head></html>",
			expected: len("<!-- <head> --><html><head>"),
		},
		{
			name:     "head inside script is ignored",
			body:     "<script>var s = '<head>';</script><head></head>",
			expected: len("<script>var s = '<head>';</script><head>"),
		},
		{
			name:     "header element is not head",
			body:     "<body><header>x</header><head></head></body>",
			expected: len("<body><header>x</header><head>"),
		},
		{
			name:     "multibyte content before head",
			body:     "<!-- héllo wörld --><head></head>",
			expected: len("<!-- héllo wörld --><head>"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, err := HeadInsertionOffset([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, offset)
		})
	}
}

func TestHeadInsertionOffset_Missing(t *testing.T) {
	for _, body := range []string{
		"",
		"<html><body>no head here</body></html>",
		"<!-- <head></head> -->",
		"just text",
	} {
		_, err := HeadInsertionOffset([]byte(body))
		assert.True(t, errors.Is(err, ErrHeadNotFound), "body %q", body)
	}
}

func TestSplice_PreservesUntouchedBytes(t *testing.T) {
	body := []byte("<head>\r\n  <TITLE>x</TITLE>\n</head>")
	out := Splice(body, 6, []byte("INSERTED"))

	assert.Equal(t, "<head>INSERTED\r\n  <TITLE>x</TITLE>\n</head>", string(out))
	assert.Equal(t, "<head>\r\n  <TITLE>x</TITLE>\n</head>", string(body), "input must not be mutated")
}

func TestSplice_OutOfRangeAppends(t *testing.T) {
	assert.Equal(t, "abcX", string(Splice([]byte("abc"), 99, []byte("X"))))
}

func injectScript(t *testing.T, body []byte, code string) []byte {
	t.Helper()
	offset, err := HeadInsertionOffset(body)
	require.NoError(t, err)
	return Splice(body, offset, InlineScript(code))
}

func TestSplice_InlineScriptAsFirstHeadChild(t *testing.T) {
	body := []byte("<html><head><title>t</title></head><body>b</body></html>")
	out := injectScript(t, body, "const SCRIPTS = [ ];")

	assert.Equal(t,
		"<html><head><script type='text/javascript'>const SCRIPTS = [ ];</script><title>t</title></head><body>b</body></html>",
		string(out),
	)
	assert.Equal(t, 1, strings.Count(string(out), "<script"))
}

func TestSplice_RepeatedInjectionIsNotIdempotent(t *testing.T) {
	body := []byte("<html><head></head></html>")
	once := injectScript(t, body, "x();")
	twice := injectScript(t, once, "x();")

	assert.Equal(t, 2, bytes.Count(twice, []byte("<script type='text/javascript'>x();</script>")))
}
