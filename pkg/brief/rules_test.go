package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePlace(t *testing.T) {
	tests := []struct {
		name       string
		event      Event
		production ExtraData
		proposals  []Proposal
		want       string
	}{
		{
			name:  "event place wins",
			event: Event{Place: "Teatro"},
			proposals: []Proposal{
				approved(CategoryLogistics, "a", "", ExtraData{"lugar": "Plaza"}),
			},
			want: "Teatro",
		},
		{
			name: "logistics before production regardless of list order",
			proposals: []Proposal{
				approved(CategoryProduction, "p", "", ExtraData{"lugar": "Auditorio"}),
				approved(CategoryLogistics, "l", "", ExtraData{"lugar": "Salón Azul"}),
			},
			want: "Salón Azul",
		},
		{
			name: "first logistics match in list order",
			proposals: []Proposal{
				approved(CategoryLogistics, "l1", "", nil),
				approved(CategoryLogistics, "l2", "", ExtraData{"lugar": "Patio"}),
				approved(CategoryLogistics, "l3", "", ExtraData{"lugar": "Sótano"}),
			},
			want: "Patio",
		},
		{
			name:       "production data fallback",
			production: ExtraData{"lugar": "Centro Cultural"},
			want:       "Centro Cultural",
		},
		{
			name: "other categories are ignored",
			proposals: []Proposal{
				approved(CategoryCatering, "c", "", ExtraData{"lugar": "Cocina"}),
			},
			want: ToBeConfirmed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePlace(tt.event, sourcesOf(tt.production, tt.proposals...)))
		})
	}
}

func TestResolveReferent(t *testing.T) {
	tests := []struct {
		name      string
		event     Event
		proposals []Proposal
		want      string
	}{
		{
			name:  "requesting user wins",
			event: Event{RequestingUser: "Ana"},
			proposals: []Proposal{
				approved(CategoryOther, "o", "Referente: Juan", nil),
			},
			want: "Ana",
		},
		{
			name: "extracted from other proposal",
			proposals: []Proposal{
				approved(CategoryOther, "o", "Contacto del área. Referente: Juan Pérez. Tel 1234", nil),
			},
			want: "Juan Pérez",
		},
		{
			name: "stops at end of line",
			proposals: []Proposal{
				approved(CategoryOther, "o", "referente María Gómez\nsegunda línea", nil),
			},
			want: "María Gómez",
		},
		{
			name: "later other proposal",
			proposals: []Proposal{
				approved(CategoryOther, "o1", "Sin datos", nil),
				approved(CategoryOther, "o2", "Referente: Luis", nil),
			},
			want: "Luis",
		},
		{
			name: "only other category is scanned",
			proposals: []Proposal{
				approved(CategoryLogistics, "l", "Referente: Juan", nil),
			},
			want: ToBeConfirmed,
		},
		{
			name: "word without name",
			proposals: []Proposal{
				approved(CategoryOther, "o", "Sin referente", nil),
			},
			want: ToBeConfirmed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveReferent(tt.event, sourcesOf(nil, tt.proposals...)))
		})
	}
}

func TestBuildSchedule(t *testing.T) {
	t.Run("placeholder without agenda", func(t *testing.T) {
		rows := BuildSchedule(sourcesOf(nil, approved(CategoryCatering, "c", "", nil)))
		require.Len(t, rows, 1)
		assert.Equal(t, ScheduleRow{Time: ToBeConfirmed, Activity: ToBeConfirmed, Speaker: ToBeConfirmed}, rows[0])
	})

	t.Run("one row per agenda proposal", func(t *testing.T) {
		rows := BuildSchedule(sourcesOf(nil,
			approved(CategoryAgenda, "Apertura", "Palabras de bienvenida", ExtraData{"horario": "10:00", "fechaEspecifica": "2025-04-20"}),
			approved(CategoryAgenda, "Cierre", "", ExtraData{"fechaEspecifica": "2025-04-21"}),
			approved(CategoryAgenda, "Panel", "Debate", nil),
		))
		require.Len(t, rows, 3)
		assert.Equal(t, ScheduleRow{Time: "10:00", Activity: "Apertura: Palabras de bienvenida", Speaker: ToBeConfirmed}, rows[0])
		assert.Equal(t, ScheduleRow{Time: "2025-04-21", Activity: "Cierre", Speaker: ToBeConfirmed}, rows[1])
		assert.Equal(t, ScheduleRow{Time: "", Activity: "Panel: Debate", Speaker: ToBeConfirmed}, rows[2])
	})
}

func TestHasEvidence(t *testing.T) {
	tests := []struct {
		name       string
		keywords   []string
		production ExtraData
		proposals  []Proposal
		want       bool
	}{
		{
			name:     "materials in description",
			keywords: MaterialsKeywords,
			proposals: []Proposal{
				approved(CategoryLogistics, "l", "Colocar un Banner en la entrada", nil),
			},
			want: true,
		},
		{
			name:     "materials in extra data value",
			keywords: MaterialsKeywords,
			proposals: []Proposal{
				approved(CategoryOther, "o", "", ExtraData{"nota": "Folletos impresos"}),
			},
			want: true,
		},
		{
			name:       "materials in production data",
			keywords:   MaterialsKeywords,
			production: ExtraData{"comunicacionPieza": "Flyer"},
			want:       true,
		},
		{
			name:     "no materials",
			keywords: MaterialsKeywords,
			proposals: []Proposal{
				approved(CategoryCatering, "c", "Coffee break", nil),
			},
			want: false,
		},
		{
			name:     "special request",
			keywords: SpecialRequestKeywords,
			proposals: []Proposal{
				approved(CategoryOther, "o", "Pedido especial de accesibilidad", nil),
			},
			want: true,
		},
		{
			name:     "rejected proposals are not evidence",
			keywords: SpecialRequestKeywords,
			proposals: []Proposal{
				proposal("REJECTED", CategoryOther, "o", "Pedido especial", nil),
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasEvidence(sourcesOf(tt.production, tt.proposals...), tt.keywords))
		})
	}
}

func TestHasEvidence_EveryKeyword(t *testing.T) {
	tables := map[string][]string{"materials": MaterialsKeywords, "special": SpecialRequestKeywords}
	for name, keywords := range tables {
		for _, kw := range keywords {
			t.Run(name+"/"+kw, func(t *testing.T) {
				s := sourcesOf(nil, approved(CategoryOther, "o", "Hay "+kw, nil))
				assert.True(t, HasEvidence(s, keywords))
			})
		}
	}
}

func TestResolveCommunications(t *testing.T) {
	s := sourcesOf(
		ExtraData{"comunicacionMedio": "Redes", "comunicacionPieza": "Ignorada"},
		approved(CategoryTechnical, "t", "", ExtraData{"comunicacionMensajeClave": "Ignorado"}),
		approved(CategoryProduction, "p1", "", ExtraData{"comunicacionPieza": "Flyer"}),
		approved(CategoryProduction, "p2", "", ExtraData{"comunicacionPieza": "Video", "comunicacionPlazoEntrega": "10 días"}),
	)
	got := ResolveCommunications(s)
	assert.Equal(t, CommunicationsRequest{
		Piece:              "Flyer",
		Medium:             "Redes",
		KeyMessage:         ToBeConfirmed,
		DesignRestrictions: ToBeConfirmed,
		Deadline:           "10 días",
	}, got)
}
