package schema

// CoreEventTable represents the 'core.event' table
type CoreEventTable struct {
	Table           string
	ID              string
	TitleTH         string
	TitleEN         string
	SubtitleTH      string
	SubtitleEN      string
	DescriptionTH   string
	DescriptionEN   string
	Image           string
	Date            string
	DateRange       string
	Status          string
	StatusText      string
	OrderingType    string
	DisplayOrder    string
	Location        string
	Organizer       string
	OrganizerLogo   string
	RegistrationURL string
	CreatedAt       string
	UpdatedAt       string
}

// CoreEvent is the schema definition for core.event
var CoreEvent = CoreEventTable{
	Table:           "core.event",
	ID:              "id",
	TitleTH:         "title_th",
	TitleEN:         "title_en",
	SubtitleTH:      "subtitle_th",
	SubtitleEN:      "subtitle_en",
	DescriptionTH:   "description_th",
	DescriptionEN:   "description_en",
	Image:           "image",
	Date:            "date",
	DateRange:       "date_range",
	Status:          "status",
	StatusText:      "status_text",
	OrderingType:    "ordering_type",
	DisplayOrder:    "display_order",
	Location:        "location",
	Organizer:       "organizer",
	OrganizerLogo:   "organizer_logo",
	RegistrationURL: "registration_url",
	CreatedAt:       "created_at",
	UpdatedAt:       "updated_at",
}

func (t CoreEventTable) Columns() []string {
	return []string{
		t.ID, t.TitleTH, t.TitleEN, t.SubtitleTH, t.SubtitleEN,
		t.DescriptionTH, t.DescriptionEN, t.Image, t.Date, t.DateRange,
		t.Status, t.StatusText, t.OrderingType, t.DisplayOrder, t.Location,
		t.Organizer, t.OrganizerLogo, t.RegistrationURL, t.CreatedAt, t.UpdatedAt,
	}
}
