// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package member

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) List(context context.Context) ([]*Member, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC, %s ASC
	`,
		schema.CoreMember.ID,
		schema.CoreMember.Firstname,
		schema.CoreMember.Lastname,
		schema.CoreMember.Picture,
		schema.CoreMember.University,
		schema.CoreMember.Major,
		schema.CoreMember.Position,
		schema.CoreMember.Department,
		schema.CoreMember.Working,
		schema.CoreMember.CreatedAt,
		schema.CoreMember.UpdatedAt,
		schema.CoreMember.Table,
		schema.CoreMember.Position, schema.CoreMember.Lastname, schema.CoreMember.Firstname,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_members")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(
			&m.ID, &m.Firstname, &m.Lastname, &m.Picture, &m.University,
			&m.Major, &m.Position, &m.Department, &m.Working, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_member")
		}
		members = append(members, m)
	}

	return members, nil
}
