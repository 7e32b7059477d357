// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package event defines the domain entities for association activities.

Events carry loosely structured, human-entered date strings ("20.07.2025" or
"20.07.2025 - 23.07.2025") rather than typed dates, because the display text
is authored by organizers. Ordering therefore happens in the application:
manually curated events come first, then date-ordered events sorted by a
lenient parse of their date string.
*/
package event

import (
	"sort"
	"strings"
	"time"

	"github.com/tsakorea/tsak-api/pkg/slice"
)

// # Domain Enums

// Status represents the registration state of an event.
type Status string

const (
	// StatusEnded marks events that have already taken place.
	StatusEnded Status = "ended"

	// StatusClosed marks upcoming events whose registration has closed.
	StatusClosed Status = "closed"

	// StatusOpen marks events currently accepting registrations.
	StatusOpen Status = "open"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusEnded, StatusClosed, StatusOpen:
		return true
	}
	return false
}

// OrderingType selects how an event is positioned in the listing.
type OrderingType string

const (
	// OrderingManual pins the event into the curated block at the top,
	// positioned by its Order field.
	OrderingManual OrderingType = "manual"

	// OrderingDate leaves the event in the chronological block.
	OrderingDate OrderingType = "date"
)

// IsValid reports whether o is a recognised [OrderingType] value.
func (o OrderingType) IsValid() bool {
	return o == OrderingManual || o == OrderingDate
}

// # Core Entities

// SponsorRef is the minimal sponsor projection attached to an event.
type SponsorRef struct {
	Name string `json:"name"`
	Logo string `json:"logoUrl"`
}

// Event is a single association activity, past or upcoming.
type Event struct {
	ID              int
	TitleTH         string
	TitleEN         string
	SubtitleTH      string
	SubtitleEN      string
	DescriptionTH   string
	DescriptionEN   string
	Image           string
	Date            string // free text, "DD.MM.YYYY" or "DD.MM.YYYY - DD.MM.YYYY"
	DateRange       string
	Status          Status
	StatusText      string
	OrderingType    OrderingType
	Order           int
	Location        string
	Organizer       string
	OrganizerLogo   string
	RegistrationURL string
	Sponsors        []SponsorRef
	Gallery         []string // stored gallery paths, already ordered
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// # Display Ordering

// dateLayout is the organizer-facing date format.
const dateLayout = "02.01.2006"

// SortForDisplay orders events for the public listing.
//
// The slice is partitioned into two blocks that never interleave:
//
//  1. Manually curated events (OrderingManual), sorted by Order ascending
//     with newer events first among equals.
//  2. Everything else, sorted by a lenient parse of the FIRST date token
//     in the Date string, most recent first. Entries whose date cannot be
//     parsed always sort to the end of this block, in their incoming order.
//
// Sorting is stable and the input slice is not modified.
func SortForDisplay(events []*Event) []*Event {
	manual := slice.Filter(events, func(e *Event) bool { return e.OrderingType == OrderingManual })
	dated := slice.Filter(events, func(e *Event) bool { return e.OrderingType != OrderingManual })

	sort.SliceStable(manual, func(i, j int) bool {
		if manual[i].Order != manual[j].Order {
			return manual[i].Order < manual[j].Order
		}
		return manual[i].CreatedAt.After(manual[j].CreatedAt)
	})

	sort.SliceStable(dated, func(i, j int) bool {
		timeI, okI := parseFirstDate(dated[i].Date)
		timeJ, okJ := parseFirstDate(dated[j].Date)

		// Unparseable entries always lose, regardless of direction.
		if okI != okJ {
			return okI
		}
		if !okI {
			return false
		}
		return timeI.After(timeJ)
	})

	return append(manual, dated...)
}

// parseFirstDate leniently extracts the first date token from a free-text
// date string. "20.07.2025 - 23.07.2025" parses as 20 July 2025.
func parseFirstDate(raw string) (time.Time, bool) {
	token := raw
	if idx := strings.Index(raw, " - "); idx >= 0 {
		token = raw[:idx]
	}
	token = strings.TrimSpace(token)

	parsed, err := time.Parse(dateLayout, token)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
