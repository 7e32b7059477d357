package schema

// CoreAnnouncementTable represents the 'core.announcement' table
type CoreAnnouncementTable struct {
	Table       string
	ID          string
	TitleTH     string
	TitleEN     string
	ContentTH   string
	ContentEN   string
	Date        string
	SemesterID  string
	Department  string
	Views       string
	IsPublished string
	CreatedAt   string
	UpdatedAt   string
}

// CoreAnnouncement is the schema definition for core.announcement
var CoreAnnouncement = CoreAnnouncementTable{
	Table:       "core.announcement",
	ID:          "id",
	TitleTH:     "title_th",
	TitleEN:     "title_en",
	ContentTH:   "content_th",
	ContentEN:   "content_en",
	Date:        "date",
	SemesterID:  "semester_id",
	Department:  "department",
	Views:       "views",
	IsPublished: "is_published",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t CoreAnnouncementTable) Columns() []string {
	return []string{
		t.ID, t.TitleTH, t.TitleEN, t.ContentTH, t.ContentEN, t.Date,
		t.SemesterID, t.Department, t.Views, t.IsPublished, t.CreatedAt, t.UpdatedAt,
	}
}
