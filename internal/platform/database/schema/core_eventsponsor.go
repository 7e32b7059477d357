package schema

// CoreEventSponsorTable represents the 'core.event_sponsor' junction table
type CoreEventSponsorTable struct {
	Table     string
	EventID   string
	SponsorID string
}

// CoreEventSponsor is the schema definition for core.event_sponsor
var CoreEventSponsor = CoreEventSponsorTable{
	Table:     "core.event_sponsor",
	EventID:   "event_id",
	SponsorID: "sponsor_id",
}
