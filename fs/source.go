// Package fs reads competitor pages from disk and writes rendered briefs.
package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/brief"
	"golang.org/x/net/html/charset"
)

// DecodeHTML converts raw page bytes to UTF-8 text. The encoding is taken
// from a byte order mark or a <meta> charset declaration and defaults to
// UTF-8.
func DecodeHTML(raw []byte) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(raw), "text/html")
	if err != nil {
		return "", brief.Errorf(brief.EINVALID, "unsupported page encoding: %v", err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// ReadDocument reads and decodes one HTML file. The document is named after
// the file's base name.
func ReadDocument(path string) (brief.Document, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return brief.Document{}, brief.Errorf(brief.ENOTFOUND, "file %q not found", path)
	} else if err != nil {
		return brief.Document{}, err
	}

	text, err := DecodeHTML(raw)
	if err != nil {
		return brief.Document{}, err
	}
	return brief.Document{Name: filepath.Base(path), HTML: text}, nil
}

// ReadDocuments reads the files in order.
func ReadDocuments(paths []string) ([]brief.Document, error) {
	docs := make([]brief.Document, 0, len(paths))
	for _, p := range paths {
		doc, err := ReadDocument(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// OutputPath returns the default file name for a brief:
// content_brief_<keyword with spaces as underscores>.<ext>.
func OutputPath(keyword string, format brief.Format) string {
	name := strings.Join(strings.Fields(keyword), "_")
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, name)
	return "content_brief_" + name + "." + format.Ext()
}
