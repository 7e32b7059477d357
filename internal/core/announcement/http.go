// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package announcement

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tsakorea/tsak-api/internal/platform/constants"
	"github.com/tsakorea/tsak-api/internal/platform/locale"
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
	router.Get("/filters", handler.filters)
	router.Get("/{id}", handler.get)
	router.Get("/{id}/related", handler.related)
}

// # Handlers

/*
list handles GET /api/announcements.

Description: Lists published announcements. Supports date_from/date_to,
semester, department, search, sort_by and sort_order query parameters;
the "All" sentinel on semester/department means unfiltered.

Returns:
  - 200: Array of list projections in the requested locale
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	loc := locale.FromRequest(request, constants.QueryParamLocale, locale.Thai)
	filter := ParseFilter(request.URL.Query())

	announcements, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(announcements, func(a *Announcement) listItem {
		return newListItem(loc, a)
	}))
}

/*
get handles GET /api/announcements/{id}.

Description: Fetches a single published announcement and records the view.
The view counter is incremented atomically before serialization, so the
returned "views" already includes this request.

Returns:
  - 200: Detail projection in the requested locale
  - 404: Unknown or unpublished announcement
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	loc := locale.FromRequest(request, constants.QueryParamLocale, locale.Thai)

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

	respond.OK(writer, newDetail(loc, found))
}

/*
related handles GET /api/announcements/{id}/related.

Description: Lists published announcements from the same department,
excluding the announcement itself, capped at the configured limit.

Returns:
  - 200: Array of list projections
  - 404: Unknown or unpublished source announcement
*/
func (handler *Handler) related(writer http.ResponseWriter, request *http.Request) {
	loc := locale.FromRequest(request, constants.QueryParamLocale, locale.Thai)

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	announcements, err := handler.service.Related(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(announcements, func(a *Announcement) listItem {
		return newListItem(loc, a)
	}))
}

/*
filters handles GET /api/announcements/filters.

Description: Returns the semester and department choices for the filter
picker. Both lists are prefixed with an "All" pseudo-entry.

Returns:
  - 200: {semesters: [{code, display_name}], departments: [string]}
*/
func (handler *Handler) filters(writer http.ResponseWriter, request *http.Request) {
	loc := locale.FromRequest(request, constants.QueryParamLocale, locale.Thai)

	options, err := handler.service.FilterOptions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	semesters := make([]semesterDoc, 0, len(options.Semesters)+1)
	semesters = append(semesters, semesterDoc{
		Code:        filterAll,
		DisplayName: locale.Pick(loc, "ทั้งหมด", "All"),
	})
	for _, s := range options.Semesters {
		semesters = append(semesters, newSemesterDoc(loc, s))
	}

	departments := append([]string{filterAll}, options.Departments...)

	respond.OK(writer, filterOptionsDoc{
		Semesters:   semesters,
		Departments: departments,
	})
}

// # Projections

// semesterDoc is the locale-resolved semester reference used everywhere a
// semester appears in announcement payloads.
type semesterDoc struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}

func newSemesterDoc(loc locale.Locale, s *Semester) semesterDoc {
	return semesterDoc{
		Code:        s.Code,
		DisplayName: locale.Pick(loc, s.NameTH, s.NameEN),
	}
}

type listItem struct {
	ID         int         `json:"id"`
	Date       string      `json:"date"`
	Semester   semesterDoc `json:"semester"`
	Department Department  `json:"department"`
	Title      string      `json:"title"`
	Views      int64       `json:"views"`
}

func newListItem(loc locale.Locale, a *Announcement) listItem {
	return listItem{
		ID:         a.ID,
		Date:       a.Date.Format("2006-01-02"),
		Semester:   newSemesterDoc(loc, &a.Semester),
		Department: a.Department,
		Title:      locale.Pick(loc, a.TitleTH, a.TitleEN),
		Views:      a.Views,
	}
}

type relatedLinkDoc struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Order int    `json:"order"`
}

type detailDoc struct {
	listItem
	Content      string           `json:"content"`
	RelatedLinks []relatedLinkDoc `json:"related_links"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func newDetail(loc locale.Locale, a *Announcement) detailDoc {
	links := make([]relatedLinkDoc, 0, len(a.RelatedLinks))
	for _, link := range a.RelatedLinks {
		links = append(links, relatedLinkDoc{
			ID:    link.ID,
			Name:  locale.Pick(loc, link.NameTH, link.NameEN),
			URL:   link.URL,
			Order: link.Order,
		})
	}

	return detailDoc{
		listItem:     newListItem(loc, a),
		Content:      locale.Pick(loc, a.ContentTH, a.ContentEN),
		RelatedLinks: links,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type filterOptionsDoc struct {
	Semesters   []semesterDoc `json:"semesters"`
	Departments []string      `json:"departments"`
}
