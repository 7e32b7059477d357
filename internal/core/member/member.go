// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package member defines the board roster domain.

The roster is small (a few dozen people per semester), so the listing
returns everyone in a fixed presentation order and leaves department
filtering to the client.
*/
package member

import "time"

// # Domain Enums

// Position is a member's role on the board. The constant order mirrors the
// presentation order of the roster.
type Position string

const (
	PositionPresident     Position = "president"
	PositionVicePresident Position = "vice_president"
	PositionSecretary     Position = "secretary"
	PositionHead          Position = "head"
	PositionMember        Position = "member"
	PositionAdvisor       Position = "advisor"
)

// IsValid reports whether p is a recognised [Position] value.
func (p Position) IsValid() bool {
	switch p {
	case
		PositionPresident,
		PositionVicePresident,
		PositionSecretary,
		PositionHead,
		PositionMember,
		PositionAdvisor:
		return true
	}
	return false
}

// Department is the board unit a member belongs to. Note this vocabulary
// differs from the announcement department vocabulary: the roster has an
// honorary department and names the documentation unit "documents".
type Department string

const (
	DepartmentHonorary   Department = "honorary"
	DepartmentExecutive  Department = "executive"
	DepartmentLiaison    Department = "liaison"
	DepartmentPR         Department = "pr"
	DepartmentEvents     Department = "events"
	DepartmentAccounting Department = "accounting"
	DepartmentDocuments  Department = "documents"
	DepartmentIT         Department = "it"
)

// IsValid reports whether d is a recognised [Department] value.
func (d Department) IsValid() bool {
	switch d {
	case
		DepartmentHonorary,
		DepartmentExecutive,
		DepartmentLiaison,
		DepartmentPR,
		DepartmentEvents,
		DepartmentAccounting,
		DepartmentDocuments,
		DepartmentIT:
		return true
	}
	return false
}

// # Core Entity

// Member is one person on the association roster.
type Member struct {
	ID         int
	Firstname  string
	Lastname   string
	Picture    string // stored path; may be empty
	University string
	Major      string
	Position   Position
	Department Department
	Working    bool // currently active in the role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
