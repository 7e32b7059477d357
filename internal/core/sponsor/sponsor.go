// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

// Package sponsor defines the supporter directory: embassies, partner
// organizations, student networks and commercial sponsors, served as one
// grouped payload.
package sponsor

import "time"

// Type classifies a supporting organization.
type Type string

const (
	TypeEmbassy Type = "embassy"
	TypePartner Type = "partner"
	TypeNetwork Type = "network"
	TypeSponsor Type = "sponsor"
)

// IsValid reports whether t is a recognised [Type] value.
func (t Type) IsValid() bool {
	switch t {
	case TypeEmbassy, TypePartner, TypeNetwork, TypeSponsor:
		return true
	}
	return false
}

// Sponsor is one supporting organization.
type Sponsor struct {
	ID            int
	Type          Type
	NameTH        string
	NameEN        string
	DescriptionTH string
	DescriptionEN string
	Logo          string
	Order         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Grouped partitions the directory by [Type], each group preserving the
// store's curated order.
type Grouped struct {
	Embassies []*Sponsor
	Partners  []*Sponsor
	Networks  []*Sponsor
	Sponsors  []*Sponsor
}

// GroupByType partitions an ordered slice without reordering. Entries with
// an unrecognised type are dropped.
func GroupByType(sponsors []*Sponsor) *Grouped {
	grouped := &Grouped{}
	for _, s := range sponsors {
		switch s.Type {
		case TypeEmbassy:
			grouped.Embassies = append(grouped.Embassies, s)
		case TypePartner:
			grouped.Partners = append(grouped.Partners, s)
		case TypeNetwork:
			grouped.Networks = append(grouped.Networks, s)
		case TypeSponsor:
			grouped.Sponsors = append(grouped.Sponsors, s)
		}
	}
	return grouped
}
