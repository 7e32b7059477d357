package schema

// CoreMemberTable represents the 'core.member' table
type CoreMemberTable struct {
	Table      string
	ID         string
	Firstname  string
	Lastname   string
	Picture    string
	University string
	Major      string
	Position   string
	Department string
	Working    string
	CreatedAt  string
	UpdatedAt  string
}

// CoreMember is the schema definition for core.member
var CoreMember = CoreMemberTable{
	Table:      "core.member",
	ID:         "id",
	Firstname:  "firstname",
	Lastname:   "lastname",
	Picture:    "picture",
	University: "university",
	Major:      "major",
	Position:   "position",
	Department: "department",
	Working:    "working",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

func (t CoreMemberTable) Columns() []string {
	return []string{
		t.ID, t.Firstname, t.Lastname, t.Picture, t.University, t.Major,
		t.Position, t.Department, t.Working, t.CreatedAt, t.UpdatedAt,
	}
}
