package htmlx

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrHeadNotFound = errors.New("<head></head> is missing in the response")

const (
	scriptOpenTag  = "<script type='text/javascript'>"
	scriptCloseTag = "</script>"
)

// HeadInsertionOffset returns the byte offset just after the first <head>
// start tag, which is the position before its first child node. Tags inside
// comments and raw-text elements such as <script> are ignored.
func HeadInsertionOffset(body []byte) (int, error) {
	z := html.NewTokenizer(bytes.NewReader(body))
	offset := 0
	for {
		tt := z.Next()
		raw := z.Raw()
		offset += len(raw)

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != nil && !errors.Is(err, io.EOF) {
				return 0, err
			}
			return 0, ErrHeadNotFound
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Head {
				return offset, nil
			}
		}
	}
}

// Splice returns a new slice with insert placed at offset. Bytes outside the
// insertion point are copied unchanged.
func Splice(body []byte, offset int, insert []byte) []byte {
	if offset < 0 || offset > len(body) {
		offset = len(body)
	}
	out := make([]byte, 0, len(body)+len(insert))
	out = append(out, body[:offset]...)
	out = append(out, insert...)
	out = append(out, body[offset:]...)
	return out
}

// InlineScript wraps code in a single inline script element.
func InlineScript(code string) []byte {
	return []byte(scriptOpenTag + code + scriptCloseTag)
}
