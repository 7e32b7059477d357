// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package experience

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsakorea/tsak-api/internal/platform/database/schema"
	"github.com/tsakorea/tsak-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx. The structured
// lists live in jsonb columns and decode through [BilingualList], which
// validates each item's shape as it scans.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var experienceSelect = fmt.Sprintf(`
	SELECT %s
	FROM %s
`,
	strings.Join(schema.CoreExperience.Columns(), ", "),
	schema.CoreExperience.Table,
)

func (repository *PostgresRepository) List(context context.Context) ([]*Experience, error) {
	query := experienceSelect + fmt.Sprintf(
		" ORDER BY %s DESC, %s DESC",
		schema.CoreExperience.DatePosted, schema.CoreExperience.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_experiences")
	}
	defer rows.Close()

	var experiences []*Experience
	for rows.Next() {
		e := &Experience{}
		if err := rows.Scan(scanTargets(e)...); err != nil {
			return nil, dberr.Wrap(err, "scan_experience")
		}
		experiences = append(experiences, e)
	}

	return experiences, nil
}

func (repository *PostgresRepository) Get(context context.Context, id uuid.UUID) (*Experience, error) {
	query := experienceSelect + fmt.Sprintf(" WHERE %s = $1", schema.CoreExperience.ID)

	e := &Experience{}
	err := repository.db.QueryRow(context, query, id).Scan(scanTargets(e)...)
	if err != nil {
		return nil, dberr.Wrap(err, "get_experience")
	}
	return e, nil
}

// scanTargets mirrors [schema.CoreExperienceTable.Columns] order.
func scanTargets(e *Experience) []any {
	return []any{
		&e.ID, &e.Photo, &e.Degree, &e.CurriculumLanguage, &e.FieldOfStudy,
		&e.NameTH, &e.NameEN, &e.UniversityTH, &e.UniversityEN, &e.MajorTH,
		&e.MajorEN, &e.ShortBioTH, &e.ShortBioEN, &e.WhyKoreaTH, &e.WhyKoreaEN,
		&e.WhyMajorTH, &e.WhyMajorEN, &e.LifeInKoreaTH, &e.LifeInKoreaEN,
		&e.RecommendationsTH, &e.RecommendationsEN, &e.MajorPros, &e.MajorCons,
		&e.UniPros, &e.UniCons, &e.RecommendedCourses, &e.Achievements,
		&e.Preparation, &e.Contact.Email, &e.Contact.Instagram, &e.Contact.LinkedIn,
		&e.DatePosted, &e.CreatedAt, &e.UpdatedAt,
	}
}
