package schema

// CoreSponsorTable represents the 'core.sponsor' table
type CoreSponsorTable struct {
	Table         string
	ID            string
	Type          string
	NameTH        string
	NameEN        string
	DescriptionTH string
	DescriptionEN string
	Logo          string
	DisplayOrder  string
	CreatedAt     string
	UpdatedAt     string
}

// CoreSponsor is the schema definition for core.sponsor
var CoreSponsor = CoreSponsorTable{
	Table:         "core.sponsor",
	ID:            "id",
	Type:          "type",
	NameTH:        "name_th",
	NameEN:        "name_en",
	DescriptionTH: "description_th",
	DescriptionEN: "description_en",
	Logo:          "logo",
	DisplayOrder:  "display_order",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

func (t CoreSponsorTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.NameTH, t.NameEN, t.DescriptionTH, t.DescriptionEN,
		t.Logo, t.DisplayOrder, t.CreatedAt, t.UpdatedAt,
	}
}
