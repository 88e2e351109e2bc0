package brief

import "strings"

var cateringScope = []Category{CategoryCatering, CategoryProduction}

// DetectCateringTypes returns the independent catering flags found in the
// structured tipoCatering field or in free text.
func DetectCateringTypes(s Sources) map[CateringType]bool {
	found := make(map[CateringType]bool, len(CateringTypes))
	srcs := s.scope(cateringScope...)
	parts := make([]string, 0, len(srcs)*2)
	for _, src := range srcs {
		tipo := strings.ToLower(src.extra.Text(KeyCateringType))
		if t, ok := CateringStructuredValues[tipo]; ok {
			found[t] = true
		}
		parts = append(parts, src.description, src.extra.Text(KeyDietaryRestrictions))
	}
	text := strings.ToLower(strings.Join(parts, " "))
	for t, keywords := range CateringKeywords {
		if containsAny(text, keywords) {
			found[t] = true
		}
	}
	return found
}

// ResolveCateringTypes joins the labels of every detected type.
func ResolveCateringTypes(s Sources) string {
	found := DetectCateringTypes(s)
	labels := make([]string, 0, len(CateringTypes))
	for _, ct := range CateringTypes {
		if found[ct.Type] {
			labels = append(labels, ct.Label)
		}
	}
	if len(labels) == 0 {
		return ToBeConfirmed
	}
	return strings.Join(labels, ", ")
}

// ResolveCateringHeadcount returns the first structured headcount, else a
// number followed by personas/pax/asistentes in a description.
func ResolveCateringHeadcount(s Sources) string {
	srcs := s.scope(cateringScope...)
	if n := firstText(srcs, KeyCateringCount, KeyHeadcount); n != "" {
		return n
	}
	for _, src := range srcs {
		if m := HeadcountPattern.FindStringSubmatch(src.description); m != nil {
			return m[1]
		}
	}
	return ToBeConfirmed
}

// ResolveDietaryRestrictions joins every restriction with "; ".
func ResolveDietaryRestrictions(s Sources) string {
	srcs := s.scope(cateringScope...)
	parts := make([]string, 0, len(srcs))
	for _, src := range srcs {
		parts = append(parts, src.extra.Text(KeyDietaryRestrictions))
	}
	return ResolveValue(joinText("; ", parts...), ToBeConfirmed)
}
