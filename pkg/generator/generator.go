// Package generator is the public entry point of brief generation: it
// validates raw input, resolves every field, lays out the document and
// serializes it. Validation always completes before any resolution starts,
// and no partial output is returned on failure.
package generator

import (
	"bytes"
	"strings"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/document"
	"github.com/gestion-eventos/briefd/pkg/render"
)

// Result is a generated brief.
type Result struct {
	Data        []byte
	ContentType string
	FileName    string
	Fields      brief.Fields
	// Approved is the number of approved proposals that fed the brief.
	Approved int
}

// Generator is stateless after construction and safe for concurrent use.
type Generator struct {
	writer document.Writer
	opts   render.Options
}

// New creates a generator writing with w. A nil writer selects DOCX.
func New(w document.Writer, opts render.Options) *Generator {
	if w == nil {
		w = document.DOCXWriter{}
	}
	return &Generator{writer: w, opts: opts}
}

// Generate validates a raw JSON payload and produces the document.
func (g *Generator) Generate(data []byte) (*Result, error) {
	in, err := brief.Parse(data)
	if err != nil {
		return nil, err
	}
	return g.GenerateInput(in)
}

// GenerateRaw is Generate for an already decoded JSON value.
func (g *Generator) GenerateRaw(raw any) (*Result, error) {
	in, err := brief.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return g.GenerateInput(in)
}

// GenerateInput produces the document for normalized input.
func (g *Generator) GenerateInput(in *brief.BriefInput) (*Result, error) {
	res := brief.Resolve(in)
	doc := render.Build(res.Fields, res.Groups, g.opts)

	var buf bytes.Buffer
	if err := g.writer.Write(&buf, doc); err != nil {
		return nil, &InternalError{Op: "write " + g.writer.Extension(), Err: err}
	}
	return &Result{
		Data:        buf.Bytes(),
		ContentType: g.writer.ContentType(),
		FileName:    FileName(in.Event.Title, g.writer.Extension()),
		Fields:      res.Fields,
		Approved:    res.Groups.Total(),
	}, nil
}

// Preview validates the payload and returns the resolved fields only.
func (g *Generator) Preview(data []byte) (*brief.Fields, error) {
	in, err := brief.Parse(data)
	if err != nil {
		return nil, err
	}
	f := brief.Resolve(in).Fields
	return &f, nil
}

// GenerateBrief renders raw JSON input as a DOCX brief with default options.
func GenerateBrief(data []byte) ([]byte, error) {
	res, err := New(document.DOCXWriter{}, render.DefaultOptions()).Generate(data)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

var unsafeFileChars = strings.NewReplacer(
	"/", "-", `\`, "-", ":", "-", "*", "-", "?", "-", `"`, "-", "<", "-", ">", "-", "|", "-",
)

// FileName builds "Brief - <title>.<ext>" with path-unsafe characters replaced.
func FileName(title, ext string) string {
	title = brief.ResolveValue(title, "Sin título")
	return "Brief - " + unsafeFileChars.Replace(title) + "." + ext
}
