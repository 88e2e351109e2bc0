// Package store reads events and their approved proposals from PostgreSQL and
// returns them in the raw brief input shape, so stored data goes through the
// same validation path as HTTP payloads.
package store

import (
	"bytes"
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/gestion-eventos/briefd/pkg/brief"
	"github.com/gestion-eventos/briefd/pkg/database"
)

// ErrNotFound is returned when the requested event does not exist.
var ErrNotFound = errors.New("event not found")

const (
	eventsTable    = "events"
	proposalsTable = "proposals"
	dateLayout     = "2006-01-02"
)

// EventStore loads brief inputs from the events and proposals tables.
type EventStore struct {
	drv dialect.Driver
}

// NewEventStore creates a store backed by the client's ent driver.
func NewEventStore(c *database.Client) *EventStore {
	return &EventStore{drv: c.Driver()}
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.Postgres)
}

// LoadBriefInput returns {"event": ..., "proposals": [...]} for the event id,
// with APPROVED proposals only, oldest approval first. JSON text columns that
// fail to parse are treated as absent.
func (s *EventStore) LoadBriefInput(ctx context.Context, id string) (map[string]any, error) {
	event, err := s.loadEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	proposals, err := s.loadApprovedProposals(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string]any{"event": event, "proposals": proposals}, nil
}

func (s *EventStore) loadEvent(ctx context.Context, id string) (map[string]any, error) {
	query, args := builder().
		Select("titulo", "descripcion", "tipo_evento", "area_solicitante", "usuario_solicitante",
			"publico", "fecha_tentativa", "estado", "lugar", "programa", "funcionario", "datos_produccion").
		From(entsql.Table(eventsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("failed to query event %s: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read event %s: %w", id, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var (
		title, description, eventType, area, status        string
		user, audience, place, program, officials, prodRaw stdsql.NullString
		date                                               stdsql.NullTime
	)
	if err := rows.Scan(&title, &description, &eventType, &area, &user,
		&audience, &date, &status, &place, &program, &officials, &prodRaw); err != nil {
		return nil, fmt.Errorf("failed to scan event %s: %w", id, err)
	}

	event := map[string]any{
		"titulo":          title,
		"descripcion":     description,
		"requiere":        eventType,
		"areaSolicitante": area,
		"estado":          status,
	}
	setOptional(event, "usuarioSolicitante", user)
	setOptional(event, "publico", audience)
	setOptional(event, "lugar", place)
	setOptional(event, "programa", program)
	setOptional(event, "funcionario", officials)
	if date.Valid {
		event["fechaTentativa"] = date.Time.UTC().Format(dateLayout)
	}
	if bag, ok := parseObject(prodRaw); ok {
		event["datosProduccion"] = bag
	}
	return event, rows.Err()
}

// approvedStatus matches col the way brief.Proposal.IsApproved does: blanks
// trimmed, case ignored.
func approvedStatus(col string) *entsql.Predicate {
	return entsql.P(func(b *entsql.Builder) {
		b.WriteString("UPPER(TRIM(").Ident(col).WriteString(")) = ").Arg(brief.StatusApproved)
	})
}

func (s *EventStore) loadApprovedProposals(ctx context.Context, eventID string) ([]any, error) {
	query, args := builder().
		Select("estado", "categoria", "titulo", "nombre_proyecto", "descripcion", "impacto", "datos_extra").
		From(entsql.Table(proposalsTable)).
		Where(entsql.And(
			entsql.EQ("event_id", eventID),
			approvedStatus("estado"),
		)).
		OrderBy(entsql.Asc("updated_at"), entsql.Asc("id")).
		Query()

	rows := &entsql.Rows{}
	if err := s.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("failed to query proposals of %s: %w", eventID, err)
	}
	defer rows.Close()

	proposals := []any{}
	for rows.Next() {
		var (
			status, category, title, description, impact string
			project, extraRaw                            stdsql.NullString
		)
		if err := rows.Scan(&status, &category, &title, &project, &description, &impact, &extraRaw); err != nil {
			return nil, fmt.Errorf("failed to scan proposal of %s: %w", eventID, err)
		}
		p := map[string]any{
			"status":      status,
			"categoria":   category,
			"titulo":      title,
			"descripcion": description,
			"impacto":     impact,
		}
		setOptional(p, "nombreProyecto", project)
		if bag, ok := parseObject(extraRaw); ok {
			p["datosExtra"] = bag
		} else {
			p["datosExtra"] = map[string]any{}
		}
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read proposals of %s: %w", eventID, err)
	}
	return proposals, nil
}

func setOptional(m map[string]any, key string, v stdsql.NullString) {
	if v.Valid && v.String != "" {
		m[key] = v.String
	}
}

// parseObject decodes a JSON object column, keeping numbers as json.Number.
func parseObject(raw stdsql.NullString) (map[string]any, bool) {
	if !raw.Valid || raw.String == "" {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw.String)))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// EventRecord is a row of the events table.
type EventRecord struct {
	ID             string
	Title          string
	Description    string
	EventType      string // comma-separated requirements
	RequestingArea string
	RequestingUser string
	Audience       string
	TentativeDate  *time.Time
	Status         string
	Place          string
	Program        string
	Officials      string
	ProductionData string // JSON object text
}

// ProposalRecord is a row of the proposals table.
type ProposalRecord struct {
	ID          string
	EventID     string
	Status      string
	Category    string
	Title       string
	ProjectName string
	Description string
	Impact      string
	ExtraData   string // JSON object text
	UpdatedAt   time.Time
}

// InsertEvent stores an event row.
func (s *EventStore) InsertEvent(ctx context.Context, e EventRecord) error {
	status := e.Status
	if status == "" {
		status = "DRAFT"
	}
	var date any
	if e.TentativeDate != nil {
		date = *e.TentativeDate
	}
	query, args := builder().
		Insert(eventsTable).
		Columns("id", "titulo", "descripcion", "tipo_evento", "area_solicitante", "usuario_solicitante",
			"publico", "fecha_tentativa", "estado", "lugar", "programa", "funcionario", "datos_produccion").
		Values(e.ID, e.Title, e.Description, e.EventType, e.RequestingArea, nullable(e.RequestingUser),
			nullable(e.Audience), date, status, nullable(e.Place), nullable(e.Program), nullable(e.Officials),
			nullable(e.ProductionData)).
		Query()

	var res stdsql.Result
	if err := s.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("failed to insert event %s: %w", e.ID, err)
	}
	return nil
}

// InsertProposal stores a proposal row. A zero UpdatedAt uses the current time.
func (s *EventStore) InsertProposal(ctx context.Context, p ProposalRecord) error {
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	query, args := builder().
		Insert(proposalsTable).
		Columns("id", "event_id", "estado", "categoria", "titulo", "nombre_proyecto",
			"descripcion", "impacto", "datos_extra", "updated_at").
		Values(p.ID, p.EventID, p.Status, p.Category, p.Title, nullable(p.ProjectName),
			p.Description, p.Impact, nullable(p.ExtraData), updated).
		Query()

	var res stdsql.Result
	if err := s.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("failed to insert proposal %s: %w", p.ID, err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
