package brief

import "strings"

var technicalScope = []Category{CategoryTechnical, CategoryProduction}

// ResolveStructuredTechnical reads the explicit si/no flag of item across
// TECNICA and PRODUCCION sources. Any "si" wins over any "no". The boolean
// reports whether a flag was found at all.
func ResolveStructuredTechnical(s Sources, item TechnicalItem) (string, bool) {
	srcs := s.scope(technicalScope...)
	hasYes, hasNo := false, false
	for _, src := range srcs {
		switch strings.ToLower(src.extra.Text(string(item))) {
		case "si":
			hasYes = true
		case "no":
			hasNo = true
		}
	}
	switch {
	case hasYes:
		out := "Sí."
		if countKey, ok := TechnicalCountKeys[item]; ok {
			if n := firstText(srcs, countKey); n != "" {
				out += " Cantidad: " + n
			}
		}
		return out, true
	case hasNo:
		return "No", true
	default:
		return NotDefined, false
	}
}

// MatchTechnicalKeywords scans descriptions and equipment free text for the
// item's keywords. On a match it returns the concatenated free text of every
// technical source as detail.
func MatchTechnicalKeywords(s Sources, item TechnicalItem) (string, bool) {
	keywords, ok := TechnicalKeywords[item]
	if !ok {
		return "", false
	}
	srcs := s.scope(technicalScope...)
	details := make([]string, 0, len(srcs))
	for _, src := range srcs {
		details = append(details, joinText(" ",
			src.description,
			src.extra.Text(KeyEquipment),
			src.extra.Text(KeyEquipmentNeeded),
			src.extra.Text(KeyTechnicalRequirements),
		))
	}
	if !containsAny(strings.ToLower(strings.Join(details, " ")), keywords) {
		return "", false
	}
	return joinText("; ", details...), true
}

// ResolveTechnicalItem returns the checklist value of item: structured flag
// first, keyword evidence second, NotDefined otherwise.
func ResolveTechnicalItem(s Sources, item TechnicalItem) string {
	if v, ok := ResolveStructuredTechnical(s, item); ok {
		return v
	}
	detail, ok := MatchTechnicalKeywords(s, item)
	if !ok {
		return NotDefined
	}
	if item == ItemMicrophones {
		return "Sí. Cantidad: " + ResolveMicrophoneCount(s)
	}
	return joinText(" ", "Sí.", detail)
}

// ResolveMicrophoneCount prefers the structured quantity and falls back to
// extracting a number next to "micrófono" in technical text.
func ResolveMicrophoneCount(s Sources) string {
	srcs := s.scope(technicalScope...)
	if n := firstText(srcs, KeyMicrophonesCount); n != "" {
		return n
	}
	parts := make([]string, 0, len(srcs)*3)
	for _, src := range srcs {
		parts = append(parts,
			src.description,
			src.extra.Text(KeyEquipment),
			src.extra.Text(KeyTechnicalRequirements),
		)
	}
	return ExtractMicrophoneCount(strings.Join(parts, " "))
}

// ExtractMicrophoneCount finds "3 micrófonos" or "micrófonos: 3" in text.
func ExtractMicrophoneCount(text string) string {
	for _, re := range MicrophoneCountPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ToBeConfirmed
}
