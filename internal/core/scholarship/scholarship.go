// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package scholarship defines the scholarship catalog domain.

Each scholarship is categorized by a single provider type and by three
multi-select vocabularies (funding types, study levels, fields of study).
All bilingual text is served raw in both languages; the frontend performs
language selection for this resource.
*/
package scholarship

import (
	"strings"
	"time"

	"github.com/tsakorea/tsak-api/internal/platform/validate"
)

// # Domain Enums

// Type classifies the scholarship provider.
type Type string

const (
	TypeGovernment   Type = "government"
	TypeUniversity   Type = "university"
	TypePrivate      Type = "private"
	TypeOrganization Type = "organization"
)

// Types lists every valid [Type] in presentation order.
var Types = []string{
	string(TypeGovernment),
	string(TypeUniversity),
	string(TypePrivate),
	string(TypeOrganization),
}

// IsValid reports whether t is a recognised [Type] value.
func (t Type) IsValid() bool {
	switch t {
	case TypeGovernment, TypeUniversity, TypePrivate, TypeOrganization:
		return true
	}
	return false
}

// Multi-select vocabularies. Every element of the corresponding field must
// come from the closed set; there is no free-form entry.
var (
	FundingTypes = []string{"full-tuition", "partial-tuition", "merit-based", "need-based"}

	StudyLevels = []string{"undergraduate", "graduate", "masters", "phd", "all-levels"}

	FieldsOfStudy = []string{"all-fields", "science", "arts", "business", "medicine"}
)

// # Core Entity

// Scholarship is one catalog entry. JSON tags follow the public payload:
// the Thai value owns the bare key, the English value the _en suffix.
type Scholarship struct {
	ID               int       `json:"id"`
	NameTH           string    `json:"name"`
	NameEN           string    `json:"name_en"`
	ProviderTH       string    `json:"provider"`
	ProviderEN       string    `json:"provider_en"`
	DescriptionTH    string    `json:"description"`
	DescriptionEN    string    `json:"description_en"`
	Benefits         []string  `json:"benefits"`
	BenefitsEN       []string  `json:"benefits_en"`
	DeadlineTH       string    `json:"deadline"`
	DeadlineEN       string    `json:"deadline_en"`
	EligibilityTH    string    `json:"eligibility"`
	EligibilityEN    string    `json:"eligibility_en"`
	MonthlyAllowance string    `json:"monthly_allowance"`
	AllowanceEN      string    `json:"monthly_allowance_en"`
	Link             string    `json:"link"`
	Type             Type      `json:"type"`
	FundingType      []string  `json:"funding_type"`
	StudyLevel       []string  `json:"study_level"`
	FieldOfStudy     []string  `json:"field_of_study"`
	Order            int       `json:"-"`
	IsActive         bool      `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Validate checks the entry against the closed vocabularies. One reusable
// rule covers all three multi-select fields.
func (s *Scholarship) Validate() error {
	v := &validate.Validator{}
	v.Required("name", s.NameTH).
		Required("provider", s.ProviderTH).
		Required("deadline", s.DeadlineTH).
		OneOf("type", string(s.Type), Types...).
		EachOneOf("funding_type", s.FundingType, FundingTypes...).
		EachOneOf("study_level", s.StudyLevel, StudyLevels...).
		EachOneOf("field_of_study", s.FieldOfStudy, FieldsOfStudy...)
	return v.Err()
}

// InvalidTypeMessage is the exact client-facing message for an unknown
// provider-type path segment.
func InvalidTypeMessage() string {
	return "Invalid type. Must be one of: " + strings.Join(Types, ", ")
}
