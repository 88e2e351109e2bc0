package brief

import "strings"

// source is one record a resolver may read: an approved proposal, or the
// event-level production bag acting as a PRODUCTION fallback.
type source struct {
	category    Category
	title       string
	description string
	extra       ExtraData
}

// Sources is the scan space shared by all resolvers: approved proposals plus
// the optional event production bag. The bag is never turned into a
// proposal; it is only consulted by PRODUCTION-scoped rules, after every real
// PRODUCTION proposal.
type Sources struct {
	approved   []ApprovedProposal
	production ExtraData
}

// NewSources builds the scan space. production may be nil.
func NewSources(approved []ApprovedProposal, production ExtraData) Sources {
	if production.Len() == 0 {
		production = nil
	}
	return Sources{approved: approved, production: production}
}

// Approved returns the approved proposals, excluding the production fallback.
func (s Sources) Approved() []ApprovedProposal {
	return s.approved
}

// scope returns the records of the given categories in category priority
// order (the order of Categories), then input order. The production bag comes
// last within PRODUCTION.
func (s Sources) scope(cats ...Category) []source {
	want := make(map[Category]bool, len(cats))
	for _, c := range cats {
		want[c] = true
	}
	var out []source
	for _, c := range Categories {
		if !want[c] {
			continue
		}
		for _, p := range s.approved {
			if p.Category != c {
				continue
			}
			out = append(out, source{
				category:    p.Category,
				title:       p.Title,
				description: p.Description,
				extra:       p.Extra,
			})
		}
		if c == CategoryProduction && s.production != nil {
			out = append(out, source{category: CategoryProduction, extra: s.production})
		}
	}
	return out
}

// all returns every record, production fallback included.
func (s Sources) all() []source {
	return s.scope(Categories...)
}

// firstText returns the first non-blank value of any of keys across srcs.
// Keys are tried per record before moving to the next record.
func firstText(srcs []source, keys ...string) string {
	for _, src := range srcs {
		for _, k := range keys {
			if v := src.extra.Text(k); v != "" {
				return v
			}
		}
	}
	return ""
}

// joinText concatenates the non-blank parts with sep.
func joinText(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// containsAny reports whether lowered text contains any keyword.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
