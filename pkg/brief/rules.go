package brief

import "strings"

// EvidenceYes is the checklist value for keyword-only evidence rows.
const EvidenceYes = "Sí (según propuestas aprobadas)"

// ScheduleRow is one line of the event schedule table.
type ScheduleRow struct {
	Time     string `json:"horario"`
	Activity string `json:"dinamica"`
	Speaker  string `json:"orador"`
}

// CommunicationsRequest holds the answers of the communication pieces block.
type CommunicationsRequest struct {
	Piece              string `json:"pieza"`
	Medium             string `json:"medio"`
	KeyMessage         string `json:"mensajeClave"`
	DesignRestrictions string `json:"restriccionesDiseno"`
	Deadline           string `json:"plazoEntrega"`
}

// ResolvePlace prefers the event place, then the first lugar of a LOGISTICA
// or PRODUCCION source.
func ResolvePlace(ev Event, s Sources) string {
	if ev.Place != "" {
		return ev.Place
	}
	return ResolveValue(firstText(s.scope(CategoryLogistics, CategoryProduction), KeyPlace), ToBeConfirmed)
}

// ResolveReferent prefers the requesting user, then the first
// "referente: X" mention found in an OTRO proposal description.
func ResolveReferent(ev Event, s Sources) string {
	if ev.RequestingUser != "" {
		return ev.RequestingUser
	}
	for _, src := range s.scope(CategoryOther) {
		if !strings.Contains(strings.ToLower(src.description), ReferentKeyword) {
			continue
		}
		if m := ReferentPattern.FindStringSubmatch(src.description); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}
	return ToBeConfirmed
}

// BuildSchedule emits one row per AGENDA proposal, or a single placeholder
// row when there are none.
func BuildSchedule(s Sources) []ScheduleRow {
	agenda := s.scope(CategoryAgenda)
	if len(agenda) == 0 {
		return []ScheduleRow{{Time: ToBeConfirmed, Activity: ToBeConfirmed, Speaker: ToBeConfirmed}}
	}
	rows := make([]ScheduleRow, 0, len(agenda))
	for _, src := range agenda {
		activity := src.title
		if src.description != "" {
			activity += ": " + src.description
		}
		rows = append(rows, ScheduleRow{
			Time:     firstText([]source{src}, KeySchedule, KeySpecificDate),
			Activity: strings.TrimSpace(activity),
			Speaker:  ToBeConfirmed,
		})
	}
	return rows
}

// HasEvidence reports whether any keyword appears in the descriptions or
// serialized extra data of every source.
func HasEvidence(s Sources, keywords []string) bool {
	srcs := s.all()
	parts := make([]string, 0, len(srcs)*2)
	for _, src := range srcs {
		parts = append(parts, src.description, src.extra.serialize())
	}
	return containsAny(strings.ToLower(strings.Join(parts, " ")), keywords)
}

// ResolveCommunications reads the comunicacion* keys from PRODUCCION sources.
func ResolveCommunications(s Sources) CommunicationsRequest {
	prod := s.scope(CategoryProduction)
	first := func(key string) string {
		return ResolveValue(firstText(prod, key), ToBeConfirmed)
	}
	return CommunicationsRequest{
		Piece:              first(KeyCommsPiece),
		Medium:             first(KeyCommsMedium),
		KeyMessage:         first(KeyCommsKeyMessage),
		DesignRestrictions: first(KeyCommsDesignLimits),
		Deadline:           first(KeyCommsDeadline),
	}
}

func evidenceValue(ok bool) string {
	if ok {
		return EvidenceYes
	}
	return NotDefined
}
