// Package brief holds the deterministic rule layer that turns an event and its
// approved proposals into the resolved values of a Brief Estratégico.
//
// Nothing in this package performs I/O. The exported lookup tables
// (Categories, the keyword maps and the extraction patterns) are read-only
// configuration: no function writes to them, so concurrent resolution is safe
// as long as callers do not modify them either.
package brief

import "strings"

// Sentinel display values. ToBeConfirmed is used for whole-event fields,
// NotDefined for itemized checklist rows where no evidence was found.
const (
	ToBeConfirmed = "Por confirmar"
	NotDefined    = "No definido"
)

// StatusApproved is the only proposal status that reaches the brief.
const StatusApproved = "APPROVED"

// Category is the closed set of proposal categories.
type Category string

const (
	CategoryLogistics  Category = "LOGISTICA"
	CategoryCatering   Category = "CATERING"
	CategoryTechnical  Category = "TECNICA"
	CategoryAgenda     Category = "AGENDA"
	CategoryProduction Category = "PRODUCCION"
	CategoryOther      Category = "OTRO"
)

// Categories lists every category in rendering order.
var Categories = []Category{
	CategoryLogistics,
	CategoryCatering,
	CategoryTechnical,
	CategoryAgenda,
	CategoryProduction,
	CategoryOther,
}

var categoryAliases = map[string]Category{
	"LOGISTICA":  CategoryLogistics,
	"LOGISTICS":  CategoryLogistics,
	"CATERING":   CategoryCatering,
	"TECNICA":    CategoryTechnical,
	"TECHNICAL":  CategoryTechnical,
	"AGENDA":     CategoryAgenda,
	"PRODUCCION": CategoryProduction,
	"PRODUCTION": CategoryProduction,
	"OTRO":       CategoryOther,
	"OTHER":      CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryLogistics:  "Logística",
	CategoryCatering:   "Catering",
	CategoryTechnical:  "Técnica",
	CategoryAgenda:     "Agenda",
	CategoryProduction: "Producción",
	CategoryOther:      "Otro",
}

// ParseCategory maps a raw category to a known one. Unrecognized values
// become CategoryOther.
func ParseCategory(s string) Category {
	if c, ok := categoryAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return c
	}
	return CategoryOther
}

// Label returns the Spanish display label of the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Audience is the event audience type. The zero value means unset.
type Audience string

const (
	AudienceExternal Audience = "EXTERNO"
	AudienceInternal Audience = "INTERNO"
	AudienceMixed    Audience = "MIXTO"
)

var audienceAliases = map[string]Audience{
	"EXTERNO":  AudienceExternal,
	"EXTERNAL": AudienceExternal,
	"INTERNO":  AudienceInternal,
	"INTERNAL": AudienceInternal,
	"MIXTO":    AudienceMixed,
	"MIXED":    AudienceMixed,
}

// Event is the normalized event. Optional string fields are empty when absent;
// required ones may also be empty after trimming.
type Event struct {
	Title          string
	Description    string
	Requires       []string
	RequestingArea string
	RequestingUser string
	Audience       Audience
	TentativeDate  string
	Status         string
	Place          string
	Program        string
	Officials      string
	// ProductionData is the event-level production bag. Nil when absent or empty.
	ProductionData ExtraData
}

// Proposal is a normalized proposal in any status.
type Proposal struct {
	Status      string
	Category    Category
	Title       string
	ProjectName string
	Description string
	Impact      string
	Extra       ExtraData
}

// IsApproved reports whether the proposal status is APPROVED, ignoring case.
func (p Proposal) IsApproved() bool {
	return strings.EqualFold(strings.TrimSpace(p.Status), StatusApproved)
}

// BriefInput is the canonical input of one brief generation.
type BriefInput struct {
	Event     Event
	Proposals []Proposal
}

// ApprovedProposal is a proposal known to be APPROVED. Extra is never nil.
type ApprovedProposal struct {
	Proposal
}
