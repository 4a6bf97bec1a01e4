package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// DecodeChain decodes a body according to a Content-Encoding header value.
// Chained encodings (e.g. "gzip, br") are undone in reverse order. Supported
// algorithms: br, gzip, zstd, deflate (zlib-wrapped or raw).
// Returns the decoded body, whether it changed, and an error if decoding failed.
func DecodeChain(contentEncoding string, body []byte) ([]byte, bool, error) {
	if strings.TrimSpace(contentEncoding) == "" {
		return body, false, nil
	}
	codings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(codings) - 1; i >= 0; i-- {
		var (
			out []byte
			err error
		)
		switch strings.TrimSpace(strings.ToLower(codings[i])) {
		case "br":
			out, err = io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		case "gzip", "x-gzip":
			out, err = decodeGzip(body)
		case "zstd":
			out, err = decodeZstd(body)
		case "deflate":
			out, err = decodeDeflate(body)
		case "identity", "":
			continue
		default:
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", codings[i])
		}
		if err != nil {
			return nil, false, fmt.Errorf("decode %s: %w", strings.TrimSpace(codings[i]), err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func decodeGzip(body []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(gr)
	cerr := gr.Close()
	if err != nil {
		return nil, err
	}
	return out, cerr
}

func decodeZstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

func decodeDeflate(body []byte) ([]byte, error) {
	// zlib-wrapped first (RFC 9110), raw DEFLATE as fallback
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		out, err := io.ReadAll(zr)
		cerr := zr.Close()
		if err != nil {
			return nil, err
		}
		return out, cerr
	}
	fr := flate.NewReader(bytes.NewReader(body))
	out, err := io.ReadAll(fr)
	cerr := fr.Close()
	if err != nil {
		return nil, err
	}
	return out, cerr
}
