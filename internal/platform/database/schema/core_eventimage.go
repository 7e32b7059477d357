package schema

// CoreEventImageTable represents the 'core.event_image' table
type CoreEventImageTable struct {
	Table        string
	ID           string
	EventID      string
	Image        string
	DisplayOrder string
	CreatedAt    string
}

// CoreEventImage is the schema definition for core.event_image
var CoreEventImage = CoreEventImageTable{
	Table:        "core.event_image",
	ID:           "id",
	EventID:      "event_id",
	Image:        "image",
	DisplayOrder: "display_order",
	CreatedAt:    "created_at",
}
