package schema

// CoreExperienceTable represents the 'core.experience' table
type CoreExperienceTable struct {
	Table              string
	ID                 string
	Photo              string
	Degree             string
	CurriculumLanguage string
	FieldOfStudy       string
	NameTH             string
	NameEN             string
	UniversityTH       string
	UniversityEN       string
	MajorTH            string
	MajorEN            string
	ShortBioTH         string
	ShortBioEN         string
	WhyKoreaTH         string
	WhyKoreaEN         string
	WhyMajorTH         string
	WhyMajorEN         string
	LifeInKoreaTH      string
	LifeInKoreaEN      string
	RecommendationsTH  string
	RecommendationsEN  string
	MajorPros          string
	MajorCons          string
	UniPros            string
	UniCons            string
	RecommendedCourses string
	Achievements       string
	Preparation        string
	Email              string
	Instagram          string
	LinkedIn           string
	DatePosted         string
	CreatedAt          string
	UpdatedAt          string
}

// CoreExperience is the schema definition for core.experience
var CoreExperience = CoreExperienceTable{
	Table:              "core.experience",
	ID:                 "id",
	Photo:              "photo",
	Degree:             "degree",
	CurriculumLanguage: "curriculum_language",
	FieldOfStudy:       "field_of_study",
	NameTH:             "name_th",
	NameEN:             "name_en",
	UniversityTH:       "university_th",
	UniversityEN:       "university_en",
	MajorTH:            "major_th",
	MajorEN:            "major_en",
	ShortBioTH:         "short_bio_th",
	ShortBioEN:         "short_bio_en",
	WhyKoreaTH:         "why_korea_th",
	WhyKoreaEN:         "why_korea_en",
	WhyMajorTH:         "why_major_th",
	WhyMajorEN:         "why_major_en",
	LifeInKoreaTH:      "life_in_korea_th",
	LifeInKoreaEN:      "life_in_korea_en",
	RecommendationsTH:  "recommendations_th",
	RecommendationsEN:  "recommendations_en",
	MajorPros:          "major_pros",
	MajorCons:          "major_cons",
	UniPros:            "uni_pros",
	UniCons:            "uni_cons",
	RecommendedCourses: "recommended_courses",
	Achievements:       "achievements",
	Preparation:        "preparation",
	Email:              "email",
	Instagram:          "instagram",
	LinkedIn:           "linkedin",
	DatePosted:         "date_posted",
	CreatedAt:          "created_at",
	UpdatedAt:          "updated_at",
}

func (t CoreExperienceTable) Columns() []string {
	return []string{
		t.ID, t.Photo, t.Degree, t.CurriculumLanguage, t.FieldOfStudy,
		t.NameTH, t.NameEN, t.UniversityTH, t.UniversityEN, t.MajorTH,
		t.MajorEN, t.ShortBioTH, t.ShortBioEN, t.WhyKoreaTH, t.WhyKoreaEN,
		t.WhyMajorTH, t.WhyMajorEN, t.LifeInKoreaTH, t.LifeInKoreaEN,
		t.RecommendationsTH, t.RecommendationsEN, t.MajorPros, t.MajorCons,
		t.UniPros, t.UniCons, t.RecommendedCourses, t.Achievements,
		t.Preparation, t.Email, t.Instagram, t.LinkedIn, t.DatePosted,
		t.CreatedAt, t.UpdatedAt,
	}
}
