package schema

// CoreScholarshipTable represents the 'core.scholarship' table
type CoreScholarshipTable struct {
	Table              string
	ID                 string
	Type               string
	NameTH             string
	NameEN             string
	ProviderTH         string
	ProviderEN         string
	DescriptionTH      string
	DescriptionEN      string
	Benefits           string
	BenefitsEN         string
	DeadlineTH         string
	DeadlineEN         string
	EligibilityTH      string
	EligibilityEN      string
	MonthlyAllowanceTH string
	MonthlyAllowanceEN string
	Link               string
	FundingType        string
	StudyLevel         string
	FieldOfStudy       string
	DisplayOrder       string
	IsActive           string
	CreatedAt          string
	UpdatedAt          string
}

// CoreScholarship is the schema definition for core.scholarship
var CoreScholarship = CoreScholarshipTable{
	Table:              "core.scholarship",
	ID:                 "id",
	Type:               "type",
	NameTH:             "name_th",
	NameEN:             "name_en",
	ProviderTH:         "provider_th",
	ProviderEN:         "provider_en",
	DescriptionTH:      "description_th",
	DescriptionEN:      "description_en",
	Benefits:           "benefits",
	BenefitsEN:         "benefits_en",
	DeadlineTH:         "deadline_th",
	DeadlineEN:         "deadline_en",
	EligibilityTH:      "eligibility_th",
	EligibilityEN:      "eligibility_en",
	MonthlyAllowanceTH: "monthly_allowance_th",
	MonthlyAllowanceEN: "monthly_allowance_en",
	Link:               "link",
	FundingType:        "funding_type",
	StudyLevel:         "study_level",
	FieldOfStudy:       "field_of_study",
	DisplayOrder:       "display_order",
	IsActive:           "is_active",
	CreatedAt:          "created_at",
	UpdatedAt:          "updated_at",
}

func (t CoreScholarshipTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.NameTH, t.NameEN, t.ProviderTH, t.ProviderEN,
		t.DescriptionTH, t.DescriptionEN, t.Benefits, t.BenefitsEN,
		t.DeadlineTH, t.DeadlineEN, t.EligibilityTH, t.EligibilityEN,
		t.MonthlyAllowanceTH, t.MonthlyAllowanceEN, t.Link, t.FundingType,
		t.StudyLevel, t.FieldOfStudy, t.DisplayOrder, t.IsActive,
		t.CreatedAt, t.UpdatedAt,
	}
}
