package document

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	doc := &Document{Title: "Brief - Acto", Creator: "Tests"}
	doc.Add(
		&Paragraph{Runs: []Run{{Text: "TÍTULO", Bold: true}}, Align: AlignCenter, Fill: "153244"},
		&Paragraph{Runs: []Run{{Text: "Lugar: ", Bold: true}, {Text: "Plaza <central> & más"}}},
		&Paragraph{Runs: []Run{{Text: "Primer punto"}}, Bullet: true},
		&Table{
			Header: []Cell{{Runs: []Run{{Text: "Ítem"}}}, {Runs: []Run{{Text: "Detalle"}}}},
			Rows: [][]Cell{
				{{Runs: []Run{{Text: "Sonido"}}}, {Runs: []Run{{Text: "Sí."}}}},
				{{Runs: []Run{{Text: "Solo una celda"}}}},
			},
		},
		&Paragraph{},
	)
	return doc
}

func TestDocument_Text(t *testing.T) {
	want := "TÍTULO\n" +
		"Lugar: Plaza <central> & más\n" +
		"• Primer punto\n" +
		"Ítem | Detalle\n" +
		"Sonido | Sí.\n" +
		"Solo una celda\n" +
		"\n"
	assert.Equal(t, want, sampleDocument().Text())
}

func TestNewWriter(t *testing.T) {
	tests := []struct {
		format  Format
		wantExt string
		wantErr bool
	}{
		{"", "docx", false},
		{FormatDOCX, "docx", false},
		{"DOCX", "docx", false},
		{FormatText, "txt", false},
		{"txt", "txt", false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			w, err := NewWriter(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, w.Extension())
			assert.NotEmpty(t, w.ContentType())
		})
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextWriter{}.Write(&buf, sampleDocument()))
	assert.Equal(t, sampleDocument().Text(), buf.String())
	assert.Equal(t, "text/plain; charset=utf-8", TextWriter{}.ContentType())
}
