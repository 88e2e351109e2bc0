package brief

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Parse decodes raw JSON and normalizes it into a BriefInput.
// Numbers inside extra-data bags are kept as json.Number.
func Parse(data []byte) (*BriefInput, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, NewValidationError("", fmt.Sprintf("malformed JSON: %v", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, NewValidationError("", "unexpected data after JSON value")
	}
	return Normalize(raw)
}

// Normalize validates an already decoded JSON value and coerces it into the
// canonical BriefInput. It returns a *ValidationError for the first violation.
func Normalize(raw any) (*BriefInput, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, NewValidationError("", "expected an object with 'event' and 'proposals'")
	}

	rawEvent, ok := root["event"]
	if !ok || rawEvent == nil {
		return nil, NewValidationError("event", "required")
	}
	eventObj, ok := rawEvent.(map[string]any)
	if !ok {
		return nil, NewValidationError("event", "expected an object")
	}
	event, err := normalizeEvent(eventObj)
	if err != nil {
		return nil, err
	}

	rawProposals, ok := root["proposals"]
	if !ok || rawProposals == nil {
		return nil, NewValidationError("proposals", "required")
	}
	list, ok := rawProposals.([]any)
	if !ok {
		return nil, NewValidationError("proposals", "expected a list")
	}
	proposals := make([]Proposal, 0, len(list))
	for i, item := range list {
		path := fmt.Sprintf("proposals[%d]", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, NewValidationError(path, "expected an object")
		}
		p, err := normalizeProposal(path, obj)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}

	return &BriefInput{Event: event, Proposals: proposals}, nil
}

func normalizeEvent(obj map[string]any) (Event, error) {
	f := fields{obj: obj, prefix: "event"}
	ev := Event{
		Title:          f.required("titulo"),
		Description:    f.required("descripcion"),
		Requires:       f.requirements("requiere"),
		RequestingArea: f.required("areaSolicitante"),
		RequestingUser: f.optional("usuarioSolicitante"),
		TentativeDate:  f.optional("fechaTentativa"),
		Status:         f.optional("estado"),
		Place:          f.optional("lugar"),
		Program:        f.optional("programa"),
		Officials:      f.optional("funcionario"),
	}
	if aud := f.optional("publico"); aud != "" {
		known, ok := audienceAliases[strings.ToUpper(aud)]
		if !ok {
			f.fail("publico", "expected one of EXTERNO, INTERNO, MIXTO")
		}
		ev.Audience = known
	}
	if v, ok := obj["datosProduccion"]; ok && v != nil {
		bag, isObj := v.(map[string]any)
		if !isObj {
			f.fail("datosProduccion", "expected an object")
		} else if cleaned := cleanExtra(bag); cleaned.Len() > 0 {
			ev.ProductionData = cleaned
		}
	}
	return ev, f.err
}

func normalizeProposal(path string, obj map[string]any) (Proposal, error) {
	f := fields{obj: obj, prefix: path}
	p := Proposal{
		Status:      f.required("status"),
		Category:    ParseCategory(f.required("categoria")),
		Title:       f.required("titulo"),
		ProjectName: f.optional("nombreProyecto"),
		Description: f.required("descripcion"),
		Impact:      f.required("impacto"),
	}
	// Non-object bags (strings, lists) degrade to an empty bag.
	if bag, ok := obj["datosExtra"].(map[string]any); ok {
		p.Extra = cleanExtra(bag)
	} else {
		p.Extra = ExtraData{}
	}
	return p, f.err
}

// cleanExtra drops null and empty-string values and trims strings. Every
// other key and value is preserved.
func cleanExtra(bag map[string]any) ExtraData {
	out := make(ExtraData, len(bag))
	for k, v := range bag {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out[k] = s
			}
		default:
			out[k] = v
		}
	}
	return out
}

// fields reads typed values out of a JSON object and remembers the first
// violation.
type fields struct {
	obj    map[string]any
	prefix string
	err    error
}

func (f *fields) fail(key, msg string) {
	if f.err == nil {
		f.err = NewValidationError(f.prefix+"."+key, msg)
	}
}

func (f *fields) required(key string) string {
	v, ok := f.obj[key]
	if !ok || v == nil {
		f.fail(key, "required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "expected a string")
		return ""
	}
	return strings.TrimSpace(s)
}

func (f *fields) optional(key string) string {
	v, ok := f.obj[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(key, "expected a string")
		return ""
	}
	return strings.TrimSpace(s)
}

// requirements accepts a list of strings or one comma-separated string.
func (f *fields) requirements(key string) []string {
	v, ok := f.obj[key]
	if !ok || v == nil {
		f.fail(key, "required")
		return nil
	}
	var parts []string
	switch t := v.(type) {
	case string:
		parts = strings.Split(t, ",")
	case []any:
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				f.fail(fmt.Sprintf("%s[%d]", key, i), "expected a string")
				return nil
			}
			parts = append(parts, s)
		}
	default:
		f.fail(key, "expected a list of strings or a comma-separated string")
		return nil
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
