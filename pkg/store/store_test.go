package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/store"
	testdb "github.com/gestion-eventos/briefd/test/database"
)

func seed(t *testing.T, s *store.EventStore) {
	t.Helper()
	ctx := context.Background()
	date := time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.InsertEvent(ctx, store.EventRecord{
		ID:             "evt-1",
		Title:          "Feria del Libro",
		Description:    "Encuentro anual",
		EventType:      "Producción, Cobertura",
		RequestingArea: "Cultura",
		Audience:       "EXTERNO",
		TentativeDate:  &date,
		Status:         "APPROVED",
		ProductionData: `{"comunicacionPieza": "Flyer", "microfonosCantidad": 3}`,
	}))

	base := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	proposals := []store.ProposalRecord{
		{ID: "p-late", Status: "APPROVED", Category: "LOGISTICA", Title: "Sede B", Description: "Segunda", Impact: "ALTO",
			ExtraData: `{"lugar": "Auditorio"}`, UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "p-early", Status: "APPROVED", Category: "LOGISTICA", Title: "Sede A", Description: "Primera", Impact: "ALTO",
			ProjectName: "Obra Norte", ExtraData: `{"lugar": "Salón Azul"}`, UpdatedAt: base},
		{ID: "p-rejected", Status: "REJECTED", Category: "TECNICA", Title: "Streaming 4K rechazado", Description: "No", Impact: "BAJO",
			UpdatedAt: base.Add(time.Hour)},
		{ID: "p-broken", Status: "APPROVED", Category: "OTRO", Title: "Notas", Description: "Sin datos", Impact: "BAJO",
			ExtraData: `{not json`, UpdatedAt: base.Add(3 * time.Hour)},
	}
	for _, p := range proposals {
		p.EventID = "evt-1"
		require.NoError(t, s.InsertProposal(ctx, p))
	}
}

func TestEventStore_LoadBriefInput(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := store.NewEventStore(client)
	seed(t, s)

	raw, err := s.LoadBriefInput(context.Background(), "evt-1")
	require.NoError(t, err)

	event := raw["event"].(map[string]any)
	assert.Equal(t, "Feria del Libro", event["titulo"])
	assert.Equal(t, "Producción, Cobertura", event["requiere"])
	assert.Equal(t, "2025-04-20", event["fechaTentativa"])
	assert.Equal(t, "EXTERNO", event["publico"])
	assert.NotContains(t, event, "lugar")
	assert.Equal(t, map[string]any{"comunicacionPieza": "Flyer", "microfonosCantidad": json.Number("3")}, event["datosProduccion"])

	proposals := raw["proposals"].([]any)
	require.Len(t, proposals, 3)
	titles := make([]string, 0, len(proposals))
	for _, p := range proposals {
		titles = append(titles, p.(map[string]any)["titulo"].(string))
	}
	assert.Equal(t, []string{"Sede A", "Sede B", "Notas"}, titles, "oldest approval first")
	assert.Equal(t, "Obra Norte", proposals[0].(map[string]any)["nombreProyecto"])
	assert.Equal(t, map[string]any{}, proposals[2].(map[string]any)["datosExtra"], "invalid JSON becomes an empty bag")

	in, err := brief.Normalize(raw)
	require.NoError(t, err)
	res := brief.Resolve(in)
	assert.Equal(t, "Salón Azul", res.Fields.Place)
	assert.Equal(t, "Flyer", res.Fields.Communications.Piece)
	assert.Equal(t, []string{"Producción", "Cobertura"}, in.Event.Requires)
	assert.Equal(t, 3, res.Fields.ApprovedCount)
}

func TestEventStore_ApprovedStatusIgnoresCaseAndBlanks(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := store.NewEventStore(client)
	ctx := context.Background()

	require.NoError(t, s.InsertEvent(ctx, store.EventRecord{
		ID: "evt-3", Title: "Muestra", Description: "Muestra itinerante", EventType: "Producción", RequestingArea: "Cultura",
	}))
	base := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	for i, p := range []store.ProposalRecord{
		{ID: "p-upper", Status: "APPROVED", Title: "Mayúsculas"},
		{ID: "p-lower", Status: "approved", Title: "Minúsculas"},
		{ID: "p-padded", Status: " Approved ", Title: "Con espacios"},
		{ID: "p-pending", Status: "PENDING", Title: "Pendiente"},
		{ID: "p-prefix", Status: "APPROVED_DRAFT", Title: "Borrador"},
	} {
		p.EventID, p.Category, p.Description, p.Impact = "evt-3", "OTRO", "D", "BAJO"
		p.UpdatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.InsertProposal(ctx, p))
	}

	raw, err := s.LoadBriefInput(ctx, "evt-3")
	require.NoError(t, err)
	titles := []string{}
	for _, p := range raw["proposals"].([]any) {
		titles = append(titles, p.(map[string]any)["titulo"].(string))
	}
	assert.Equal(t, []string{"Mayúsculas", "Minúsculas", "Con espacios"}, titles)

	in, err := brief.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 3, brief.Resolve(in).Fields.ApprovedCount)
}

func TestEventStore_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := store.NewEventStore(client)

	_, err := s.LoadBriefInput(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestEventStore_EventWithoutProposals(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := store.NewEventStore(client)
	ctx := context.Background()

	require.NoError(t, s.InsertEvent(ctx, store.EventRecord{
		ID: "evt-2", Title: "Acto", Description: "Acto protocolar", EventType: "Ceremonial", RequestingArea: "Protocolo",
		ProductionData: `["not", "an", "object"]`,
	}))

	raw, err := s.LoadBriefInput(ctx, "evt-2")
	require.NoError(t, err)
	assert.Equal(t, []any{}, raw["proposals"])
	assert.NotContains(t, raw["event"], "datosProduccion")
	assert.NotContains(t, raw["event"], "fechaTentativa")

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
}
