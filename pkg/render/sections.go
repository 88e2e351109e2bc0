package render

import (
	"fmt"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/document"
)

// NoDefinitions is shown when no category has approved proposals.
const NoDefinitions = "Sin definiciones aún."

func labelValue(label, value string) *document.Paragraph {
	return &document.Paragraph{Runs: []document.Run{
		{Text: label + ": ", Bold: true, Color: BrandColor, Size: sizeBody},
		{Text: value, Color: BrandColor, Size: sizeBody},
	}}
}

func sectionHeading(emoji, text string) *document.Paragraph {
	return &document.Paragraph{
		Runs:        []document.Run{{Text: emoji + " " + text, Bold: true, Color: BrandColor, Size: sizeBody}},
		SpaceBefore: 360,
		SpaceAfter:  120,
	}
}

func title(text string) *document.Paragraph {
	return &document.Paragraph{
		Runs:        []document.Run{{Text: text, Bold: true, Color: BrandColor, Size: sizeSection}},
		SpaceBefore: 400,
		SpaceAfter:  200,
	}
}

func plain(text string) *document.Paragraph {
	return &document.Paragraph{Runs: []document.Run{{Text: text, Color: BrandColor}}}
}

func spacer() *document.Paragraph {
	return &document.Paragraph{SpaceAfter: 200}
}

func definitions(groups brief.Groups) []document.Block {
	var blocks []document.Block
	for _, c := range brief.Categories {
		props := groups[c]
		if len(props) == 0 {
			continue
		}
		blocks = append(blocks, &document.Paragraph{
			Runs:        []document.Run{{Text: c.Label(), Bold: true, Color: BrandColor, Size: sizeBody}},
			SpaceBefore: 240,
			SpaceAfter:  80,
		})
		for _, p := range props {
			blocks = append(blocks, &document.Paragraph{
				Runs:   []document.Run{{Text: definitionLine(p), Color: BrandColor, Size: sizeBody}},
				Bullet: true,
			})
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, &document.Paragraph{
			Runs: []document.Run{{Text: NoDefinitions, Italic: true, Color: BrandColor}},
		})
	}
	return blocks
}

func definitionLine(p brief.ApprovedProposal) string {
	line := p.Title
	if p.ProjectName != "" {
		line += fmt.Sprintf(" (Proyecto: %s)", p.ProjectName)
	}
	return line + ": " + p.Description
}

func headerCell(text string) document.Cell {
	return document.Cell{
		Runs: []document.Run{{Text: text, Bold: true, Color: BrandColor}},
		Fill: headerFill,
	}
}

func cell(text string) document.Cell {
	return document.Cell{Runs: []document.Run{{Text: text, Color: BrandColor}}}
}

func scheduleTable(rows []brief.ScheduleRow) *document.Table {
	t := &document.Table{
		Header: []document.Cell{headerCell("Horario"), headerCell("Dinámica"), headerCell("Orador")},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []document.Cell{cell(r.Time), cell(r.Activity), cell(r.Speaker)})
	}
	return t
}

func productionTable(f brief.Fields) *document.Table {
	items := []struct{ label, value string }{
		{"Técnica - Pantalla LED", f.Technical.LEDScreen},
		{"Técnica - Pantalla retráctil", f.Technical.RetractableScreen},
		{"Técnica - Proyector", f.Technical.Projector},
		{"Técnica - Sonido", f.Technical.Sound},
		{"Técnica - Micrófonos", f.Technical.Microphones},
		{"Catering - Tipo", f.Catering.Types},
		{"Catering - Cantidad", f.Catering.Headcount},
		{"Catering - Restricciones", f.Catering.Restrictions},
		{"Listado de materiales", f.Materials},
		{"Artes gráficas", f.Graphics},
		{"Pedidos especiales", f.SpecialRequests},
	}
	t := &document.Table{
		Header: []document.Cell{headerCell("Ítem"), headerCell("Estado / Detalle")},
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []document.Cell{cell(it.label), cell(it.value)})
	}
	return t
}

func communications(c brief.CommunicationsRequest) []document.Block {
	qa := []struct{ question, answer string }{
		{"¿Qué pieza se necesita?", c.Piece},
		{"¿Para qué medio?", c.Medium},
		{"¿Cuál es el mensaje clave?", c.KeyMessage},
		{"¿Hay restricciones de diseño?", c.DesignRestrictions},
		{"¿Plazo de entrega?", c.Deadline},
	}
	blocks := make([]document.Block, 0, len(qa))
	for i, q := range qa {
		blocks = append(blocks, plain(fmt.Sprintf("%d. %s %s.", i+1, q.question, q.answer)))
	}
	return blocks
}
