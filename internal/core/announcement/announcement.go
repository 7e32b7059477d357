// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package announcement defines the core domain entities for association news.

It manages official announcements published by the TSAK board, organized by
semester and owning department, in both Thai and English.

Core Responsibility:

  - Publishing: Only published announcements are ever visible to clients.
  - Discovery: Date-window, semester, department and free-text filtering.
  - Analytics: Tracks per-announcement view counts for popularity sorting.

This package acts as the source of truth for announcement-related data models.
*/
package announcement

import (
	"net/url"
	"strings"
	"time"

	"github.com/tsakorea/tsak-api/internal/platform/locale"
	"github.com/tsakorea/tsak-api/pkg/pointer"
)

// # Domain Enums

// Department identifies the board department that owns an announcement.
type Department string

const (
	// DepartmentTSAK marks organization-wide announcements.
	DepartmentTSAK Department = "tsak"

	DepartmentExecutive     Department = "executive"
	DepartmentDocumentation Department = "documentation"
	DepartmentAccounting    Department = "accounting"
	DepartmentLiaison       Department = "liaison"
	DepartmentPR            Department = "pr"
	DepartmentIT            Department = "it"
	DepartmentEvents        Department = "events"
)

// IsValid reports whether d is a recognised [Department] value.
func (d Department) IsValid() bool {
	switch d {
	case
		DepartmentTSAK,
		DepartmentExecutive,
		DepartmentDocumentation,
		DepartmentAccounting,
		DepartmentLiaison,
		DepartmentPR,
		DepartmentIT,
		DepartmentEvents:
		return true
	}
	return false
}

// # Core Entities

// Semester groups announcements into academic periods (e.g. "spring_2025").
type Semester struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	NameTH   string `json:"name_th"`
	NameEN   string `json:"name_en"`
	IsActive bool   `json:"is_active"`
}

// Announcement is the central aggregate of this package. Thai fields are
// always populated; English fields are optional translations.
type Announcement struct {
	ID          int        `json:"id"`
	TitleTH     string     `json:"title_th"`
	TitleEN     string     `json:"title_en"`
	ContentTH   string     `json:"content_th"`
	ContentEN   string     `json:"content_en"`
	Date        time.Time  `json:"date"`
	Semester    Semester   `json:"semester"`
	Department  Department `json:"department"`
	Views       int64      `json:"views"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// RelatedLinks is populated on detail fetches only.
	RelatedLinks []RelatedLink `json:"related_links,omitempty"`
}

// RelatedLink is an external reference attached to an announcement
// (registration forms, documents, photo albums).
type RelatedLink struct {
	ID     int    `json:"id"`
	NameTH string `json:"name_th"`
	NameEN string `json:"name_en"`
	URL    string `json:"url"`
	Order  int    `json:"order"`
}

// # Filtering & Sorting

// The sentinel clients send to mean "no constraint" on semester/department.
const filterAll = "All"

// Sort field allow-list. Anything else collapses to SortByDate.
const (
	SortByDate  = "date"
	SortByViews = "views"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter holds the normalized parameters for an announcement listing.
//
// A zero Filter matches every published announcement. Construct it with
// [ParseFilter] so the normalization rules below are applied.
type Filter struct {
	// DateFrom/DateTo bound the announcement date (inclusive). nil = unbounded.
	DateFrom *time.Time
	DateTo   *time.Time

	// Semester is a semester code; empty = all semesters.
	Semester string

	// Department is a department slug; empty = all departments.
	Department string

	// Search is a case-folded free-text needle matched against both
	// languages of title and content.
	Search string

	// SortBy is always "date" or "views" after normalization.
	SortBy string

	// SortOrder is always "asc" or "desc" after normalization.
	SortOrder string
}

// ParseFilter builds a normalized [Filter] from URL query parameters.
//
// Normalization rules:
//   - The "All" sentinel on semester/department is equivalent to absence.
//   - Malformed date bounds are skipped, not rejected: the constraint is
//     simply dropped and the rest of the filter still applies.
//   - A from-bound later than the to-bound is kept as-is; the window is
//     empty and the listing legitimately returns nothing.
//   - The search needle is trimmed and Unicode case-folded.
//   - sort_by outside {date, views} collapses to date; sort_order outside
//     {asc, desc} collapses to desc.
//
// The result does not depend on the order query parameters appear in.
func ParseFilter(values url.Values) Filter {
	filter := Filter{
		Semester:   values.Get("semester"),
		Department: values.Get("department"),
		SortBy:     SortByDate,
		SortOrder:  SortDesc,
	}

	if from := parseDate(values.Get("date_from")); from != nil {
		filter.DateFrom = from
	}
	if to := parseDate(values.Get("date_to")); to != nil {
		filter.DateTo = to
	}

	if filter.Semester == filterAll {
		filter.Semester = ""
	}
	if filter.Department == filterAll {
		filter.Department = ""
	}

	if search := strings.TrimSpace(values.Get("search")); search != "" {
		filter.Search = locale.Fold(search)
	}

	if values.Get("sort_by") == SortByViews {
		filter.SortBy = SortByViews
	}
	if values.Get("sort_order") == SortAsc {
		filter.SortOrder = SortAsc
	}

	return filter
}

// parseDate parses an ISO date (YYYY-MM-DD), returning nil for anything else.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return pointer.To(parsed)
}
