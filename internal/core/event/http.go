// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package event

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tsakorea/tsak-api/internal/platform/media"
	requestutil "github.com/tsakorea/tsak-api/internal/platform/request"
	"github.com/tsakorea/tsak-api/internal/platform/respond"
	"github.com/tsakorea/tsak-api/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)
}

/*
list handles GET /api/events.

Description: Lists all events in display order: the manually curated block
first (order ascending), then the chronological block (most recent date
first, unparseable dates last).

Returns:
  - 200: Array of event projections
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	events, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(events, func(e *Event) eventDoc {
		return newEventDoc(request.Context(), e)
	}))
}

/*
get handles GET /api/events/{id}.

Returns:
  - 200: Event projection (same shape as the listing)
  - 404: Unknown event
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newEventDoc(request.Context(), found))
}

// # Projection

// eventDoc is the single event projection used by both the listing and the
// detail endpoint. Field names follow the frontend EventData interface.
type eventDoc struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	TitleEn          string          `json:"titleEn"`
	Subtitle         string          `json:"subtitle"`
	SubtitleEn       string          `json:"subtitleEn"`
	ImageURL         *string         `json:"imageUrl"`
	Date             string          `json:"date"`
	DateRange        string          `json:"dateRange"`
	Status           Status          `json:"status"`
	StatusText       string          `json:"statusText"`
	Description      string          `json:"description"`
	DescriptionEn    string          `json:"descriptionEn"`
	Location         string          `json:"location"`
	Organizer        string          `json:"organizer"`
	OrganizerLogoURL *string         `json:"organizerLogoUrl"`
	RegistrationURL  string          `json:"registrationUrl"`
	Sponsors         []sponsorRefDoc `json:"sponsors"`
	ImageDir         []string        `json:"imageDir"`
}

type sponsorRefDoc struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl"`
}

func newEventDoc(ctx context.Context, e *Event) eventDoc {
	sponsors := make([]sponsorRefDoc, 0, len(e.Sponsors))
	for _, s := range e.Sponsors {
		sponsors = append(sponsors, sponsorRefDoc{
			Name:    s.Name,
			LogoURL: media.Resolve(ctx, s.Logo),
		})
	}

	return eventDoc{
		ID:               strconv.Itoa(e.ID),
		Title:            e.TitleTH,
		TitleEn:          e.TitleEN,
		Subtitle:         e.SubtitleTH,
		SubtitleEn:       e.SubtitleEN,
		ImageURL:         media.Resolve(ctx, e.Image),
		Date:             e.Date,
		DateRange:        e.DateRange,
		Status:           e.Status,
		StatusText:       e.StatusText,
		Description:      e.DescriptionTH,
		DescriptionEn:    e.DescriptionEN,
		Location:         e.Location,
		Organizer:        e.Organizer,
		OrganizerLogoURL: media.Resolve(ctx, e.OrganizerLogo),
		RegistrationURL:  e.RegistrationURL,
		Sponsors:         sponsors,
		// nil (JSON null) when no gallery image has a non-empty path, never [].
		ImageDir: media.ResolveAll(ctx, e.Gallery),
	}
}
