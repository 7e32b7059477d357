package schema

// CoreSemesterTable represents the 'core.semester' table
type CoreSemesterTable struct {
	Table    string
	ID       string
	Code     string
	NameTH   string
	NameEN   string
	IsActive string
}

// CoreSemester is the schema definition for core.semester
var CoreSemester = CoreSemesterTable{
	Table:    "core.semester",
	ID:       "id",
	Code:     "code",
	NameTH:   "name_th",
	NameEN:   "name_en",
	IsActive: "is_active",
}
