package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/stypes"
)

const bulletGlyph = "• "

// DOCXWriter serializes the tree as an Office Open XML word document.
type DOCXWriter struct{}

func (DOCXWriter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}

func (DOCXWriter) Extension() string { return "docx" }

func (DOCXWriter) Write(w io.Writer, doc *Document) error {
	out, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	for _, blk := range doc.Blocks {
		switch t := blk.(type) {
		case *Paragraph:
			if err := addParagraph(out.AddParagraph, t, ""); err != nil {
				return err
			}
		case *Table:
			if err := addTable(out, t); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported block %T", blk)
		}
	}

	if err := out.Write(w); err != nil {
		return fmt.Errorf("failed to write docx: %w", err)
	}
	return nil
}

// addParagraph emits p through newPara. Text containing newlines becomes one
// paragraph per line with the same styling. fill is the shading inherited
// from an enclosing cell; p.Fill overrides it.
func addParagraph(newPara func(string) *docx.Paragraph, p *Paragraph, fill string) error {
	if p.Fill != "" {
		fill = p.Fill
	}
	runs := p.Runs
	if p.Bullet && len(runs) > 0 {
		glyph := runs[0]
		glyph.Text, glyph.Bold, glyph.Italic = bulletGlyph, false, false
		runs = append([]Run{glyph}, runs...)
	}

	for _, line := range splitLines(runs) {
		para := newPara("")
		if p.Align == AlignCenter {
			para.Justification(stypes.JustificationCenter)
		}
		for _, r := range line {
			addRun(para, r, fill)
		}
	}
	return nil
}

func addRun(para *docx.Paragraph, r Run, fill string) {
	run := para.AddText(r.Text)
	if r.Bold {
		run.Bold(true)
	}
	if r.Italic {
		run.Italic(true)
	}
	if r.Color != "" {
		run.Color(r.Color)
	}
	if r.Size > 0 {
		run.Size(uint64(r.Size / 2))
	}
	if fill != "" {
		run.Shading(stypes.ShdClear, "auto", fill)
	}
}

// splitLines breaks runs at embedded newlines. The result has at least one
// (possibly empty) line.
func splitLines(runs []Run) [][]Run {
	lines := [][]Run{nil}
	for _, r := range runs {
		parts := strings.Split(r.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			piece := r
			piece.Text = part
			lines[len(lines)-1] = append(lines[len(lines)-1], piece)
		}
	}
	return lines
}

func addTable(out *docx.RootDoc, t *Table) error {
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}

	tbl := out.AddTable()
	tbl.Style("TableGrid")
	rows := t.Rows
	if len(t.Header) > 0 {
		rows = append([][]Cell{t.Header}, rows...)
	}
	for _, cells := range rows {
		row := tbl.AddRow()
		// Short rows are padded so every row spans the full grid.
		for i := 0; i < cols; i++ {
			var c Cell
			if i < len(cells) {
				c = cells[i]
			}
			if err := addParagraph(row.AddCell().AddParagraph, &Paragraph{Runs: c.Runs}, c.Fill); err != nil {
				return err
			}
		}
	}
	return nil
}
