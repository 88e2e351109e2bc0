package brief

// TechnicalChecklist holds the itemized technical rows.
type TechnicalChecklist struct {
	LEDScreen         string `json:"pantallaLED"`
	RetractableScreen string `json:"pantallaRetractil"`
	Projector         string `json:"proyector"`
	Sound             string `json:"sonido"`
	Microphones       string `json:"microfonos"`
}

// CateringSummary holds the catering rows.
type CateringSummary struct {
	Types        string `json:"tipo"`
	Headcount    string `json:"cantidad"`
	Restrictions string `json:"restricciones"`
}

// Fields is the complete resolved field map of a brief. Every value is either
// traced to the input or one of the sentinels.
type Fields struct {
	Title           string                `json:"titulo"`
	Date            string                `json:"fecha"`
	RequestingArea  string                `json:"areaSolicitante"`
	RequestingUser  string                `json:"usuarioSolicitante"`
	Referent        string                `json:"referente"`
	Requires        string                `json:"requiere"`
	Audience        string                `json:"publico"`
	Place           string                `json:"lugar"`
	Description     string                `json:"descripcion"`
	Program         string                `json:"programa"`
	Officials       string                `json:"funcionario"`
	Schedule        []ScheduleRow         `json:"cronograma"`
	Technical       TechnicalChecklist    `json:"tecnica"`
	MicrophoneCount string                `json:"microfonosCantidad"`
	Catering        CateringSummary       `json:"catering"`
	Materials       string                `json:"materiales"`
	Graphics        string                `json:"artesGraficas"`
	SpecialRequests string                `json:"pedidosEspeciales"`
	Communications  CommunicationsRequest `json:"comunicacion"`
	ApprovedCount   int                   `json:"propuestasAprobadas"`
}

// Resolution bundles the resolved fields with the grouped approved proposals
// the renderer lists by category.
type Resolution struct {
	Fields Fields
	Groups Groups
}

// Resolve runs the approval filter and every field rule over the input.
func Resolve(in *BriefInput) Resolution {
	approved := FilterApproved(in.Proposals)
	src := NewSources(approved, in.Event.ProductionData)
	return Resolution{
		Fields: ResolveFields(in.Event, src),
		Groups: GroupByCategory(approved),
	}
}

// ResolveFields derives every brief field from the event and sources.
func ResolveFields(ev Event, s Sources) Fields {
	materials := HasEvidence(s, MaterialsKeywords)
	return Fields{
		Title:          ResolveValue(ev.Title, ToBeConfirmed),
		Date:           FormatDate(ev.TentativeDate),
		RequestingArea: ResolveValue(ev.RequestingArea, ToBeConfirmed),
		RequestingUser: ResolveValue(ev.RequestingUser, ToBeConfirmed),
		Referent:       ResolveReferent(ev, s),
		Requires:       FormatRequirements(ev.Requires),
		Audience:       FormatAudience(ev.Audience),
		Place:          ResolvePlace(ev, s),
		Description:    ResolveValue(ev.Description, ToBeConfirmed),
		Program:        ResolveValue(ev.Program, ToBeConfirmed),
		Officials:      ResolveValue(ev.Officials, ToBeConfirmed),
		Schedule:       BuildSchedule(s),
		Technical: TechnicalChecklist{
			LEDScreen:         ResolveTechnicalItem(s, ItemLEDScreen),
			RetractableScreen: ResolveTechnicalItem(s, ItemRetractableScreen),
			Projector:         ResolveTechnicalItem(s, ItemProjector),
			Sound:             ResolveTechnicalItem(s, ItemSound),
			Microphones:       ResolveTechnicalItem(s, ItemMicrophones),
		},
		MicrophoneCount: ResolveMicrophoneCount(s),
		Catering: CateringSummary{
			Types:        ResolveCateringTypes(s),
			Headcount:    ResolveCateringHeadcount(s),
			Restrictions: ResolveDietaryRestrictions(s),
		},
		Materials:       evidenceValue(materials),
		Graphics:        evidenceValue(materials),
		SpecialRequests: evidenceValue(HasEvidence(s, SpecialRequestKeywords)),
		Communications:  ResolveCommunications(s),
		ApprovedCount:   len(s.Approved()),
	}
}
