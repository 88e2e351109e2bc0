package brief

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolveValue returns the trimmed value, or fallback when it is blank.
func ResolveValue(v, fallback string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return fallback
}

// FormatDate renders a YYYY-MM-DD prefixed date as "20 de abril de 2025".
// Blank input yields ToBeConfirmed; input without an ISO prefix is returned
// unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ToBeConfirmed
	}
	m := isoDatePrefix.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	day, _ := strconv.Atoi(m[3])
	month, _ := strconv.Atoi(m[2])
	monthName := m[2]
	if month >= 1 && month <= 12 {
		monthName = spanishMonths[month]
	}
	return fmt.Sprintf("%d de %s de %s", day, monthName, m[1])
}

// FormatAudience renders the audience label.
func FormatAudience(a Audience) string {
	switch a {
	case AudienceExternal:
		return "Externo"
	case AudienceInternal:
		return "Interno"
	case AudienceMixed:
		return "Mixto"
	default:
		return ToBeConfirmed
	}
}

// FormatRequirements joins requirement tags with ", ".
func FormatRequirements(reqs []string) string {
	if len(reqs) == 0 {
		return ToBeConfirmed
	}
	return strings.Join(reqs, ", ")
}
