package brief

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ExtraData is an open key/value bag attached to a proposal or event.
// Values are strings (already trimmed), json.Number, or any other decoded
// JSON value passed through unchanged.
type ExtraData map[string]any

// Well-known extra-data keys consumed by the resolvers.
const (
	KeyPlace                 = "lugar"
	KeySchedule              = "horario"
	KeySpecificDate          = "fechaEspecifica"
	KeyEquipment             = "equipamiento"
	KeyEquipmentNeeded       = "equipamientoNecesario"
	KeyTechnicalRequirements = "requerimientosTecnicos"
	KeyLEDScreen             = "pantallaLED"
	KeyLEDScreenCount        = "pantallaLEDCantidad"
	KeyRetractableScreen     = "pantallaRetractil"
	KeyProjector             = "proyector"
	KeySound                 = "sonido"
	KeyMicrophones           = "microfonos"
	KeyMicrophonesCount      = "microfonosCantidad"
	KeyCateringType          = "tipoCatering"
	KeyCateringCount         = "cateringCantidad"
	KeyHeadcount             = "cantidadPersonas"
	KeyDietaryRestrictions   = "restriccionesAlimentarias"
	KeyCommsPiece            = "comunicacionPieza"
	KeyCommsMedium           = "comunicacionMedio"
	KeyCommsKeyMessage       = "comunicacionMensajeClave"
	KeyCommsDesignLimits     = "comunicacionRestriccionesDiseno"
	KeyCommsDeadline         = "comunicacionPlazoEntrega"
)

// Text returns the value under key rendered as trimmed text, or "" when the
// key is absent.
func (x ExtraData) Text(key string) string {
	v, ok := x[key]
	if !ok {
		return ""
	}
	return strings.TrimSpace(valueText(v))
}

// Has reports whether key holds a non-blank value.
func (x ExtraData) Has(key string) bool {
	return x.Text(key) != ""
}

// Len returns the number of keys in the bag.
func (x ExtraData) Len() int {
	return len(x)
}

// serialize renders the bag as JSON for keyword evidence scans.
func (x ExtraData) serialize() string {
	if x == nil {
		return "{}"
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any(x)); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
