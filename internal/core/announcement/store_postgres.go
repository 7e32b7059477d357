// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package announcement

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

// incrementViewsQuery is the single atomic statement behind view counting.
// Concurrent detail fetches serialize on the row lock; no increment is lost
// and no read-modify-write cycle exists.
var incrementViewsQuery = fmt.Sprintf(`
	UPDATE %s
	SET %s = %s + 1
	WHERE %s = $1 AND %s = TRUE
	RETURNING %s
`,
	schema.CoreAnnouncement.Table,
	schema.CoreAnnouncement.Views, schema.CoreAnnouncement.Views,
	schema.CoreAnnouncement.ID, schema.CoreAnnouncement.IsPublished,
	schema.CoreAnnouncement.Views,
)

// listSelect is the shared projection for listings: announcement fields plus
// the joined semester.
var listSelect = fmt.Sprintf(`
	SELECT
		a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		s.%s, s.%s, s.%s, s.%s, s.%s
	FROM %s a
	JOIN %s s ON s.%s = a.%s
	WHERE a.%s = TRUE
`,
	schema.CoreAnnouncement.ID,
	schema.CoreAnnouncement.TitleTH,
	schema.CoreAnnouncement.TitleEN,
	schema.CoreAnnouncement.Date,
	schema.CoreAnnouncement.Department,
	schema.CoreAnnouncement.Views,
	schema.CoreAnnouncement.CreatedAt,
	schema.CoreSemester.ID,
	schema.CoreSemester.Code,
	schema.CoreSemester.NameTH,
	schema.CoreSemester.NameEN,
	schema.CoreSemester.IsActive,
	schema.CoreAnnouncement.Table,
	schema.CoreSemester.Table,
	schema.CoreSemester.ID, schema.CoreAnnouncement.SemesterID,
	schema.CoreAnnouncement.IsPublished,
)

func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Announcement, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(listSelect)

	// Apply Filters (Dynamic WHERE clause construction)
	if filter.DateFrom != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s >= $%d", schema.CoreAnnouncement.Date, argID))
		args = append(args, *filter.DateFrom)
		argID++
	}

	if filter.DateTo != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s <= $%d", schema.CoreAnnouncement.Date, argID))
		args = append(args, *filter.DateTo)
		argID++
	}

	if filter.Semester != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.%s = $%d", schema.CoreSemester.Code, argID))
		args = append(args, filter.Semester)
		argID++
	}

	if filter.Department != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.CoreAnnouncement.Department, argID))
		args = append(args, filter.Department)
		argID++
	}

	// Free-text search across both languages of title and content.
	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND (a.%s ILIKE $%d OR a.%s ILIKE $%d OR a.%s ILIKE $%d OR a.%s ILIKE $%d)",
			schema.CoreAnnouncement.TitleTH, argID,
			schema.CoreAnnouncement.TitleEN, argID,
			schema.CoreAnnouncement.ContentTH, argID,
			schema.CoreAnnouncement.ContentEN, argID,
		))
		args = append(args, likePattern(filter.Search))
		argID++
	}

	queryBuilder.WriteString(buildOrderBy(filter))

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_announcements")
	}
	defer rows.Close()

	var announcements []*Announcement
	for rows.Next() {
		a := &Announcement{IsPublished: true}
		if err := rows.Scan(
			&a.ID, &a.TitleTH, &a.TitleEN, &a.Date, &a.Department, &a.Views, &a.CreatedAt,
			&a.Semester.ID, &a.Semester.Code, &a.Semester.NameTH, &a.Semester.NameEN, &a.Semester.IsActive,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_announcement")
		}
		announcements = append(announcements, a)
	}

	return announcements, nil
}

// likeEscaper neutralizes LIKE metacharacters so a user search term always
// matches as a literal substring. Postgres treats backslash as the default
// LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds the ILIKE argument for a substring search.
func likePattern(needle string) string {
	return "%" + likeEscaper.Replace(needle) + "%"
}

// buildOrderBy maps the normalized sort fields onto an ORDER BY clause.
// The trailing created_at key keeps the ordering stable across ties.
func buildOrderBy(filter Filter) string {
	column := schema.CoreAnnouncement.Date
	if filter.SortBy == SortByViews {
		column = schema.CoreAnnouncement.Views
	}

	direction := "DESC"
	if filter.SortOrder == SortAsc {
		direction = "ASC"
	}

	return fmt.Sprintf(" ORDER BY a.%s %s, a.%s DESC", column, direction, schema.CoreAnnouncement.CreatedAt)
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Announcement, error) {
	query := fmt.Sprintf(`
		SELECT
			a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
			s.%s, s.%s, s.%s, s.%s, s.%s
		FROM %s a
		JOIN %s s ON s.%s = a.%s
		WHERE a.%s = $1 AND a.%s = TRUE
	`,
		schema.CoreAnnouncement.ID,
		schema.CoreAnnouncement.TitleTH,
		schema.CoreAnnouncement.TitleEN,
		schema.CoreAnnouncement.ContentTH,
		schema.CoreAnnouncement.ContentEN,
		schema.CoreAnnouncement.Date,
		schema.CoreAnnouncement.Department,
		schema.CoreAnnouncement.Views,
		schema.CoreAnnouncement.CreatedAt,
		schema.CoreAnnouncement.UpdatedAt,
		schema.CoreSemester.ID,
		schema.CoreSemester.Code,
		schema.CoreSemester.NameTH,
		schema.CoreSemester.NameEN,
		schema.CoreSemester.IsActive,
		schema.CoreAnnouncement.Table,
		schema.CoreSemester.Table,
		schema.CoreSemester.ID, schema.CoreAnnouncement.SemesterID,
		schema.CoreAnnouncement.ID, schema.CoreAnnouncement.IsPublished,
	)

	a := &Announcement{IsPublished: true}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.TitleTH, &a.TitleEN, &a.ContentTH, &a.ContentEN, &a.Date,
		&a.Department, &a.Views, &a.CreatedAt, &a.UpdatedAt,
		&a.Semester.ID, &a.Semester.Code, &a.Semester.NameTH, &a.Semester.NameEN, &a.Semester.IsActive,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_announcement")
	}

	links, err := repository.listLinks(context, id)
	if err != nil {
		return nil, err
	}
	a.RelatedLinks = links

	return a, nil
}

func (repository *PostgresRepository) listLinks(context context.Context, announcementID int) ([]RelatedLink, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC
	`,
		schema.CoreRelatedLink.ID,
		schema.CoreRelatedLink.NameTH,
		schema.CoreRelatedLink.NameEN,
		schema.CoreRelatedLink.URL,
		schema.CoreRelatedLink.DisplayOrder,
		schema.CoreRelatedLink.Table,
		schema.CoreRelatedLink.AnnouncementID,
		schema.CoreRelatedLink.DisplayOrder, schema.CoreRelatedLink.ID,
	)

	rows, err := repository.db.Query(context, query, announcementID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_related_links")
	}
	defer rows.Close()

	var links []RelatedLink
	for rows.Next() {
		var link RelatedLink
		if err := rows.Scan(&link.ID, &link.NameTH, &link.NameEN, &link.URL, &link.Order); err != nil {
			return nil, dberr.Wrap(err, "scan_related_link")
		}
		links = append(links, link)
	}

	return links, nil
}

func (repository *PostgresRepository) IncrementViews(context context.Context, id int) (int64, error) {
	var views int64
	err := repository.db.QueryRow(context, incrementViewsQuery, id).Scan(&views)
	if err != nil {
		return 0, dberr.Wrap(err, "increment_announcement_views")
	}
	return views, nil
}

func (repository *PostgresRepository) ListRelated(context context.Context, id int, limit int) ([]*Announcement, error) {
	query := listSelect + fmt.Sprintf(`
		AND a.%s = (SELECT %s FROM %s WHERE %s = $1)
		AND a.%s <> $1
		ORDER BY a.%s DESC, a.%s DESC
		LIMIT $2
	`,
		schema.CoreAnnouncement.Department,
		schema.CoreAnnouncement.Department, schema.CoreAnnouncement.Table, schema.CoreAnnouncement.ID,
		schema.CoreAnnouncement.ID,
		schema.CoreAnnouncement.Date, schema.CoreAnnouncement.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, id, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_related_announcements")
	}
	defer rows.Close()

	var announcements []*Announcement
	for rows.Next() {
		a := &Announcement{IsPublished: true}
		if err := rows.Scan(
			&a.ID, &a.TitleTH, &a.TitleEN, &a.Date, &a.Department, &a.Views, &a.CreatedAt,
			&a.Semester.ID, &a.Semester.Code, &a.Semester.NameTH, &a.Semester.NameEN, &a.Semester.IsActive,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_related_announcement")
		}
		announcements = append(announcements, a)
	}

	return announcements, nil
}

func (repository *PostgresRepository) ListActiveSemesters(context context.Context) ([]*Semester, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s DESC
	`,
		schema.CoreSemester.ID,
		schema.CoreSemester.Code,
		schema.CoreSemester.NameTH,
		schema.CoreSemester.NameEN,
		schema.CoreSemester.IsActive,
		schema.CoreSemester.Table,
		schema.CoreSemester.IsActive,
		schema.CoreSemester.Code,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_active_semesters")
	}
	defer rows.Close()

	var semesters []*Semester
	for rows.Next() {
		s := &Semester{}
		if err := rows.Scan(&s.ID, &s.Code, &s.NameTH, &s.NameEN, &s.IsActive); err != nil {
			return nil, dberr.Wrap(err, "scan_semester")
		}
		semesters = append(semesters, s)
	}

	return semesters, nil
}

func (repository *PostgresRepository) ListDepartments(context context.Context) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM %s
		WHERE %s = TRUE
		ORDER BY %s ASC
	`,
		schema.CoreAnnouncement.Department,
		schema.CoreAnnouncement.Table,
		schema.CoreAnnouncement.IsPublished,
		schema.CoreAnnouncement.Department,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_departments")
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var department string
		if err := rows.Scan(&department); err != nil {
			return nil, dberr.Wrap(err, "scan_department")
		}
		departments = append(departments, department)
	}

	return departments, nil
}
