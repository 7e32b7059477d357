// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package sponsor

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

// One pass over the directory; grouping happens in the service layer.
var listQuery = fmt.Sprintf(`
	SELECT %s
	FROM %s
	ORDER BY %s ASC, %s ASC
`,
	strings.Join(schema.CoreSponsor.Columns(), ", "),
	schema.CoreSponsor.Table,
	schema.CoreSponsor.DisplayOrder, schema.CoreSponsor.CreatedAt,
)

func (repository *PostgresRepository) List(context context.Context) ([]*Sponsor, error) {
	rows, err := repository.db.Query(context, listQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sponsors")
	}
	defer rows.Close()

	var sponsors []*Sponsor
	for rows.Next() {
		s := &Sponsor{}
		if err := rows.Scan(
			&s.ID, &s.Type, &s.NameTH, &s.NameEN, &s.DescriptionTH, &s.DescriptionEN,
			&s.Logo, &s.Order, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_sponsor")
		}
		sponsors = append(sponsors, s)
	}

	return sponsors, nil
}
