// Package render lays out resolved brief fields as a document tree in the
// fixed BRIEF ESTRATÉGICO structure. It adds labels and headings only; every
// value comes from brief.Fields or the grouped approved proposals.
package render

import (
	"fmt"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/document"
)

const (
	// BrandColor is the institutional teal used for all text.
	BrandColor = "153244"
	white      = "FFFFFF"
	headerFill = "E8EEF2"

	sizeBody    = 20
	sizeSection = 24
	sizeBanner  = 48
)

// Options carry document metadata that is not part of the brief content.
type Options struct {
	Creator     string
	TitlePrefix string
}

// DefaultOptions returns the metadata used when none is configured.
func DefaultOptions() Options {
	return Options{Creator: "Sistema de Gestión de Eventos", TitlePrefix: "Brief - "}
}

// Build assembles the brief document.
func Build(f brief.Fields, groups brief.Groups, opts Options) *document.Document {
	doc := &document.Document{
		Title:   opts.TitlePrefix + f.Title,
		Creator: opts.Creator,
	}

	doc.Add(
		&document.Paragraph{
			Runs:       []document.Run{{Text: "BRIEF ESTRATÉGICO", Bold: true, Color: white, Size: sizeBanner}},
			Fill:       BrandColor,
			Align:      document.AlignCenter,
			SpaceAfter: 200,
		},
		&document.Paragraph{
			Runs:       []document.Run{{Text: f.Title, Bold: true, Color: BrandColor, Size: sizeSection}},
			Align:      document.AlignCenter,
			SpaceAfter: 400,
		},
	)

	doc.Add(sectionHeading("📝", "Datos básicos del evento"))
	doc.Add(
		labelValue("Nombre del evento", f.Title),
		labelValue("Fecha tentativa", f.Date),
		labelValue("Área solicitante", f.RequestingArea),
		labelValue("Usuario solicitante", f.RequestingUser),
		labelValue("Referente del evento", f.Referent),
		labelValue("Requiere", f.Requires),
		labelValue("Público", f.Audience),
		labelValue("Lugar", f.Place),
		spacer(),
	)

	doc.Add(sectionHeading("🎯", "Sentido estratégico del evento"), plain(f.Description), spacer())

	doc.Add(
		sectionHeading("🧑‍💼", "Funcionarios clave"),
		labelValue("Referente operativo", f.Referent),
		labelValue("Programa", f.Program),
		labelValue("Funcionario(s)", f.Officials),
		spacer(),
	)

	doc.Add(
		sectionHeading("🧍‍♂️", "Participación del público"),
		plain(fmt.Sprintf("Público: %s. %s", f.Audience, brief.ToBeConfirmed)),
		spacer(),
	)

	doc.Add(title("Definiciones aprobadas por área"))
	doc.Add(definitions(groups)...)
	doc.Add(spacer())

	doc.Add(sectionHeading("⏰", "Cronograma del evento"), scheduleTable(f.Schedule), spacer())

	doc.Add(
		title("BRIEF PRODUCCIÓN"),
		&document.Paragraph{
			Runs: []document.Run{{
				Text:   "Producción incluye: Técnica, Catering, listado de materiales, artes gráficas y pedidos especiales.",
				Italic: true, Color: BrandColor, Size: sizeBody,
			}},
			SpaceAfter: 120,
		},
		productionTable(f),
		spacer(),
	)

	doc.Add(
		&document.Paragraph{
			Runs:        []document.Run{{Text: "BRIEF PRODUCCIÓN - Producción tendrá en cuenta", Bold: true, Color: BrandColor, Size: sizeBody}},
			SpaceBefore: 300,
			SpaceAfter:  100,
		},
		&document.Paragraph{
			Runs: []document.Run{{Text: "Notas: Según definiciones aprobadas por área.", Italic: true, Color: BrandColor}},
		},
		spacer(),
	)

	doc.Add(title("PEDIDO DE PIEZAS DE COMUNICACIÓN"))
	doc.Add(communications(f.Communications)...)

	return doc
}
