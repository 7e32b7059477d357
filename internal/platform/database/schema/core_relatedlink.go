package schema

// CoreRelatedLinkTable represents the 'core.related_link' table
type CoreRelatedLinkTable struct {
	Table          string
	ID             string
	AnnouncementID string
	NameTH         string
	NameEN         string
	URL            string
	DisplayOrder   string
}

// CoreRelatedLink is the schema definition for core.related_link
var CoreRelatedLink = CoreRelatedLinkTable{
	Table:          "core.related_link",
	ID:             "id",
	AnnouncementID: "announcement_id",
	NameTH:         "name_th",
	NameEN:         "name_en",
	URL:            "url",
	DisplayOrder:   "display_order",
}
