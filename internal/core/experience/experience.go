// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package experience defines alumni study-abroad testimonials.

An experience is a long-form bilingual document: flat text fields carry a
Thai and an English variant side by side, while the structured lists
(pros/cons, courses, achievements, preparation) are stored as JSON
sub-documents holding both languages at once. Entries are identified by
UUID rather than a serial integer.
*/
package experience

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tsakorea/tsak-api/internal/platform/locale"
)

// # Domain Enums

// Degree is the program level the author studied at.
type Degree string

const (
	DegreeBachelor Degree = "bachelor"
	DegreeMaster   Degree = "master"
	DegreePhD      Degree = "phd"
	DegreeExchange Degree = "exchange"
)

func (d Degree) IsValid() bool {
	switch d {
	case DegreeBachelor, DegreeMaster, DegreePhD, DegreeExchange:
		return true
	}
	return false
}

// Language is the language the author's curriculum was taught in.
type Language string

const (
	LanguageKorean  Language = "korean"
	LanguageEnglish Language = "english"
	LanguageMixed   Language = "mixed"
)

func (l Language) IsValid() bool {
	switch l {
	case LanguageKorean, LanguageEnglish, LanguageMixed:
		return true
	}
	return false
}

// Field is the broad field of study.
type Field string

const (
	FieldScience       Field = "science"
	FieldArts          Field = "arts"
	FieldBusiness      Field = "business"
	FieldMedicine      Field = "medicine"
	FieldSocialScience Field = "social-science"
)

func (f Field) IsValid() bool {
	switch f {
	case FieldScience, FieldArts, FieldBusiness, FieldMedicine, FieldSocialScience:
		return true
	}
	return false
}

// # Structured Lists

// Item is one entry of a structured list. The stored form is either a bare
// string or a {title, detail} record; which one is preserved through
// decode/encode round trips.
type Item struct {
	Text   string
	Title  string
	Detail string
}

// IsRecord reports whether the item carries the {title, detail} shape.
func (item Item) IsRecord() bool {
	return item.Title != "" || item.Detail != ""
}

func (item *Item) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty list item")
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &item.Text)
	case '{':
		var record struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &record); err != nil {
			return err
		}
		item.Title = record.Title
		item.Detail = record.Detail
		return nil
	default:
		return fmt.Errorf("list item must be a string or a {title, detail} object, got %s", data)
	}
}

func (item Item) MarshalJSON() ([]byte, error) {
	if item.IsRecord() {
		return json.Marshal(struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}{Title: item.Title, Detail: item.Detail})
	}
	return json.Marshal(item.Text)
}

// BilingualList is a structured list stored with both languages in one JSON
// sub-document: {en: [...], th: [...]}.
type BilingualList struct {
	EN []Item `json:"en"`
	TH []Item `json:"th"`
}

// Pick returns the list for the requested locale. English is served only
// when requested and non-empty; otherwise Thai.
func (list BilingualList) Pick(loc locale.Locale) []Item {
	if loc == locale.English && len(list.EN) > 0 {
		return list.EN
	}
	return list.TH
}

// # Core Entity

// Contact carries the author's public contact handles. Blank handles are
// served as empty strings.
type Contact struct {
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// Experience is one alumni testimonial.
type Experience struct {
	ID                 uuid.UUID
	Photo              string
	Degree             Degree
	CurriculumLanguage Language
	FieldOfStudy       Field

	NameTH, NameEN                       string
	UniversityTH, UniversityEN           string
	MajorTH, MajorEN                     string
	ShortBioTH, ShortBioEN               string
	WhyKoreaTH, WhyKoreaEN               string
	WhyMajorTH, WhyMajorEN               string
	LifeInKoreaTH, LifeInKoreaEN         string
	RecommendationsTH, RecommendationsEN string

	MajorPros          BilingualList
	MajorCons          BilingualList
	UniPros            BilingualList
	UniCons            BilingualList
	RecommendedCourses BilingualList
	Achievements       BilingualList
	Preparation        BilingualList

	Contact    Contact
	DatePosted time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
