package brief

import "regexp"

// TechnicalItem identifies a row of the technical checklist.
type TechnicalItem string

const (
	ItemLEDScreen         TechnicalItem = KeyLEDScreen
	ItemRetractableScreen TechnicalItem = KeyRetractableScreen
	ItemProjector         TechnicalItem = KeyProjector
	ItemSound             TechnicalItem = KeySound
	ItemMicrophones       TechnicalItem = KeyMicrophones
	ItemWifi              TechnicalItem = "wifi"
	ItemStreaming         TechnicalItem = "streaming"
)

// TechnicalKeywords drives free-text evidence for technical items. Matching
// is a case-insensitive substring test. Retractable screens have no entry and
// therefore rely on the structured flag only.
var TechnicalKeywords = map[TechnicalItem][]string{
	ItemLEDScreen:   {"pantalla led", "led", "pantalla"},
	ItemProjector:   {"proyector", "proyección", "cañón"},
	ItemSound:       {"sonido", "audio", "parlantes", "amplificador"},
	ItemMicrophones: {"micrófono", "microfono", "micro"},
	ItemWifi:        {"wifi", "wi-fi", "conectividad", "internet"},
	ItemStreaming:   {"streaming", "transmisión", "transmisión en vivo"},
}

// TechnicalCountKeys maps structured items to their quantity key.
var TechnicalCountKeys = map[TechnicalItem]string{
	ItemLEDScreen:   KeyLEDScreenCount,
	ItemMicrophones: KeyMicrophonesCount,
}

// CateringType is one of the independent catering flags.
type CateringType string

const (
	CateringBreakfast   CateringType = "desayuno"
	CateringLunch       CateringType = "almuerzo"
	CateringDinner      CateringType = "cena"
	CateringCoffeeBreak CateringType = "coffee break"
)

// CateringTypes lists catering flags in display order with their labels.
var CateringTypes = []struct {
	Type  CateringType
	Label string
}{
	{CateringBreakfast, "Desayuno"},
	{CateringLunch, "Almuerzo"},
	{CateringDinner, "Cena"},
	{CateringCoffeeBreak, "Coffee break"},
}

// CateringStructuredValues maps exact tipoCatering values to a flag.
var CateringStructuredValues = map[string]CateringType{
	"desayuno":     CateringBreakfast,
	"almuerzo":     CateringLunch,
	"cena":         CateringDinner,
	"coffee break": CateringCoffeeBreak,
	"coffee":       CateringCoffeeBreak,
}

// CateringKeywords drives free-text catering detection.
var CateringKeywords = map[CateringType][]string{
	CateringBreakfast:   {"desayuno"},
	CateringLunch:       {"almuerzo"},
	CateringDinner:      {"cena"},
	CateringCoffeeBreak: {"coffee", "break", "refrigerio"},
}

// MaterialsKeywords is evidence of materials or graphic pieces.
var MaterialsKeywords = []string{"material", "arte", "gráfica", "grafica", "pieza", "banner", "folleto"}

// SpecialRequestKeywords is evidence of special requests.
var SpecialRequestKeywords = []string{"pedido especial", "especial", "particular", "específico"}

// ReferentKeyword must appear in an OTRO proposal description before a
// referent is extracted from it.
const ReferentKeyword = "referente"

var (
	// MicrophoneCountPatterns are tried in order; the first capture group is the count.
	MicrophoneCountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*micr[oó]fono`),
		regexp.MustCompile(`(?i)micr[oó]fonos?[:\s]*(\d+)`),
	}

	// HeadcountPattern extracts a headcount from catering descriptions.
	HeadcountPattern = regexp.MustCompile(`(?i)(\d+)\s*(personas|pax|asistentes)`)

	// ReferentPattern extracts the referent name up to end of line or period.
	ReferentPattern = regexp.MustCompile(`(?i)referente[:\s]+([^\n.]+)`)

	isoDatePrefix = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// spanishMonths is indexed by month number.
var spanishMonths = [...]string{
	1: "enero", 2: "febrero", 3: "marzo", 4: "abril", 5: "mayo", 6: "junio",
	7: "julio", 8: "agosto", 9: "septiembre", 10: "octubre", 11: "noviembre", 12: "diciembre",
}
