package document

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format names a serialization of the document tree.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatText Format = "text"
)

// ErrUnknownFormat is returned by NewWriter for unsupported formats.
var ErrUnknownFormat = errors.New("unknown document format")

// Writer serializes a document tree.
type Writer interface {
	Write(w io.Writer, doc *Document) error
	ContentType() string
	Extension() string
}

// NewWriter returns the writer for format.
func NewWriter(format Format) (Writer, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatDOCX, "":
		return DOCXWriter{}, nil
	case FormatText, "txt":
		return TextWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// TextWriter writes Document.Text as UTF-8.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, doc *Document) error {
	_, err := io.WriteString(w, doc.Text())
	return err
}

func (TextWriter) ContentType() string { return "text/plain; charset=utf-8" }
func (TextWriter) Extension() string   { return "txt" }
