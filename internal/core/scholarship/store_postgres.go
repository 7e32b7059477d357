// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package scholarship

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsakorea/tsak-api/internal/platform/database/schema"
	"github.com/tsakorea/tsak-api/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// scholarshipSelect is the shared projection. The multi-select vocabularies
// and benefit lists live in text[] columns and scan straight into []string.
var scholarshipSelect = fmt.Sprintf(`
	SELECT %s
	FROM %s
	WHERE %s = TRUE
`,
	strings.Join(schema.CoreScholarship.Columns(), ", "),
	schema.CoreScholarship.Table,
	schema.CoreScholarship.IsActive,
)

// activeOrder keeps the catalog in its curated order, newest entries first
// within the same slot.
var activeOrder = fmt.Sprintf(
	" ORDER BY %s ASC, %s DESC",
	schema.CoreScholarship.DisplayOrder, schema.CoreScholarship.CreatedAt,
)

func (repository *PostgresRepository) ListActive(context context.Context) ([]*Scholarship, error) {
	return repository.query(context, scholarshipSelect+activeOrder)
}

func (repository *PostgresRepository) ListActiveByType(context context.Context, scholarshipType Type) ([]*Scholarship, error) {
	query := scholarshipSelect + fmt.Sprintf(" AND %s = $1", schema.CoreScholarship.Type) + activeOrder
	return repository.query(context, query, string(scholarshipType))
}

func (repository *PostgresRepository) GetActive(context context.Context, id int) (*Scholarship, error) {
	query := scholarshipSelect + fmt.Sprintf(" AND %s = $1", schema.CoreScholarship.ID)

	s := &Scholarship{}
	err := repository.db.QueryRow(context, query, id).Scan(scanTargets(s)...)
	if err != nil {
		return nil, dberr.Wrap(err, "get_scholarship")
	}
	return s, nil
}

func (repository *PostgresRepository) query(context context.Context, query string, args ...any) ([]*Scholarship, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_scholarships")
	}
	defer rows.Close()

	var scholarships []*Scholarship
	for rows.Next() {
		s := &Scholarship{}
		if err := rows.Scan(scanTargets(s)...); err != nil {
			return nil, dberr.Wrap(err, "scan_scholarship")
		}
		scholarships = append(scholarships, s)
	}

	return scholarships, nil
}

// scanTargets mirrors [schema.CoreScholarshipTable.Columns] order.
func scanTargets(s *Scholarship) []any {
	return []any{
		&s.ID, &s.Type, &s.NameTH, &s.NameEN, &s.ProviderTH, &s.ProviderEN,
		&s.DescriptionTH, &s.DescriptionEN, &s.Benefits, &s.BenefitsEN,
		&s.DeadlineTH, &s.DeadlineEN, &s.EligibilityTH, &s.EligibilityEN,
		&s.MonthlyAllowance, &s.AllowanceEN, &s.Link, &s.FundingType,
		&s.StudyLevel, &s.FieldOfStudy, &s.Order, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	}
}
