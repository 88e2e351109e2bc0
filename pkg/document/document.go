// Package document defines a small, format-agnostic document tree (headings,
// paragraphs, bullets, tables) and writers that serialize it.
package document

import (
	"strings"
)

// Alignment of a paragraph.
type Alignment string

const (
	AlignLeft   Alignment = ""
	AlignCenter Alignment = "center"
)

// Run is a span of uniformly styled text.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string // hex RGB without '#'
	Size   int    // half-points; 0 keeps the default
}

// Block is a top-level element of the document body.
type Block interface {
	block()
}

// Paragraph is a line of runs.
type Paragraph struct {
	Runs        []Run
	Fill        string // background shading, hex RGB
	Align       Alignment
	Bullet      bool
	SpaceBefore int // twips
	SpaceAfter  int // twips
}

// Cell is a table cell.
type Cell struct {
	Runs []Run
	Fill string
}

// Table is a grid of cells. Header rows repeat on each page.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

func (*Paragraph) block() {}
func (*Table) block()     {}

// Document is the root of the tree.
type Document struct {
	Title   string
	Creator string
	Blocks  []Block
}

// Add appends blocks to the body.
func (d *Document) Add(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// Text flattens the document to plain text: one line per paragraph, bullets
// prefixed with "• ", table cells separated by " | ".
func (d *Document) Text() string {
	var b strings.Builder
	for _, blk := range d.Blocks {
		switch t := blk.(type) {
		case *Paragraph:
			if t.Bullet {
				b.WriteString("• ")
			}
			b.WriteString(runsText(t.Runs))
			b.WriteByte('\n')
		case *Table:
			if len(t.Header) > 0 {
				writeRow(&b, t.Header)
			}
			for _, row := range t.Rows {
				writeRow(&b, row)
			}
		}
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []Cell) {
	for i, c := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(runsText(c.Runs))
	}
	b.WriteByte('\n')
}

func runsText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
