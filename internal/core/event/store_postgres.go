// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package event's PostgreSQL repository hydrates the full event aggregate in a
single round-trip per query:

  - JSON Aggregation: sponsors are collected with json_agg to avoid N+1
    lookups against the junction table.
  - Array Aggregation: gallery paths arrive as an ordered text[].
*/
package event

import (
	"context"
	"encoding/json"
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

// eventSelect hydrates the full aggregate: event row, sponsors as JSON,
// gallery as an ordered array.
var eventSelect = fmt.Sprintf(`
	SELECT
		e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s,
		e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s,
		e.%s, e.%s, e.%s, e.%s, e.%s, e.%s,
		COALESCE((
			SELECT json_agg(json_build_object('name', sp.%s, 'logoUrl', sp.%s) ORDER BY sp.%s, sp.%s)
			FROM %s sp
			JOIN %s es ON es.%s = sp.%s
			WHERE es.%s = e.%s
		), '[]') AS sponsors,
		COALESCE((
			SELECT array_agg(ei.%s ORDER BY ei.%s, ei.%s)
			FROM %s ei
			WHERE ei.%s = e.%s
		), '{}') AS gallery
	FROM %s e
`,
	schema.CoreEvent.ID,
	schema.CoreEvent.TitleTH,
	schema.CoreEvent.TitleEN,
	schema.CoreEvent.SubtitleTH,
	schema.CoreEvent.SubtitleEN,
	schema.CoreEvent.DescriptionTH,
	schema.CoreEvent.DescriptionEN,
	schema.CoreEvent.Image,
	schema.CoreEvent.Date,
	schema.CoreEvent.DateRange,
	schema.CoreEvent.Status,
	schema.CoreEvent.StatusText,
	schema.CoreEvent.OrderingType,
	schema.CoreEvent.DisplayOrder,
	schema.CoreEvent.Location,
	schema.CoreEvent.Organizer,
	schema.CoreEvent.OrganizerLogo,
	schema.CoreEvent.RegistrationURL,
	schema.CoreEvent.CreatedAt,
	schema.CoreEvent.UpdatedAt,
	schema.CoreSponsor.NameTH,
	schema.CoreSponsor.Logo,
	schema.CoreSponsor.DisplayOrder, schema.CoreSponsor.CreatedAt,
	schema.CoreSponsor.Table,
	schema.CoreEventSponsor.Table,
	schema.CoreEventSponsor.SponsorID, schema.CoreSponsor.ID,
	schema.CoreEventSponsor.EventID, schema.CoreEvent.ID,
	schema.CoreEventImage.Image,
	schema.CoreEventImage.DisplayOrder, schema.CoreEventImage.CreatedAt,
	schema.CoreEventImage.Table,
	schema.CoreEventImage.EventID, schema.CoreEvent.ID,
	schema.CoreEvent.Table,
)

func (repository *PostgresRepository) List(context context.Context) ([]*Event, error) {
	// Base ordering only; display ordering is the service's concern.
	query := eventSelect + fmt.Sprintf(" ORDER BY e.%s DESC", schema.CoreEvent.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Event, error) {
	query := eventSelect + fmt.Sprintf(" WHERE e.%s = $1", schema.CoreEvent.ID)

	row := repository.db.QueryRow(context, query, id)
	return scanEvent(row.Scan)
}

// scanEvent hydrates one aggregate from a row scanner.
func scanEvent(scan func(dest ...any) error) (*Event, error) {
	e := &Event{}
	var sponsorsJSON []byte

	err := scan(
		&e.ID, &e.TitleTH, &e.TitleEN, &e.SubtitleTH, &e.SubtitleEN,
		&e.DescriptionTH, &e.DescriptionEN, &e.Image, &e.Date, &e.DateRange,
		&e.Status, &e.StatusText, &e.OrderingType, &e.Order, &e.Location,
		&e.Organizer, &e.OrganizerLogo, &e.RegistrationURL, &e.CreatedAt, &e.UpdatedAt,
		&sponsorsJSON, &e.Gallery,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_event")
	}

	if err := json.Unmarshal(sponsorsJSON, &e.Sponsors); err != nil {
		return nil, dberr.Wrap(err, "decode_event_sponsors")
	}

	return e, nil
}
