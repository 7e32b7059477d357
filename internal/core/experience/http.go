// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package experience

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsakorea/tsak-api/internal/platform/constants"
	"github.com/tsakorea/tsak-api/internal/platform/locale"
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

// # Handlers

/*
list handles GET /api/experiences.

Description: Lists testimonials newest first by posting date, resolved
into the requested language. This resource uses the "lang" query
parameter and defaults to English.

Returns:
  - 200: Array of locale-resolved projections
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	loc := locale.FromRequest(request, constants.QueryParamLang, locale.English)

	experiences, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(experiences, func(e *Experience) doc {
		return newDoc(request, loc, e)
	}))
}

/*
get handles GET /api/experiences/{id}.

Description: Fetches a single testimonial by UUID.

Returns:
  - 200: Locale-resolved projection
  - 400: Malformed UUID
  - 404: Unknown testimonial
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	loc := locale.FromRequest(request, constants.QueryParamLang, locale.English)

	id, err := requestutil.UUIDParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newDoc(request, loc, found))
}

// # Projections

type doc struct {
	ID                 string   `json:"id"`
	Photo              *string  `json:"photo"`
	Degree             Degree   `json:"degree"`
	CurriculumLanguage Language `json:"curriculumLanguage"`
	FieldOfStudy       Field    `json:"fieldOfStudy"`

	Name            string `json:"name"`
	University      string `json:"university"`
	Major           string `json:"major"`
	ShortBio        string `json:"shortBio"`
	WhyKorea        string `json:"whyKorea"`
	WhyMajor        string `json:"whyMajor"`
	LifeInKorea     string `json:"lifeInKorea"`
	Recommendations string `json:"recommendations"`

	MajorPros          []Item `json:"majorPros"`
	MajorCons          []Item `json:"majorCons"`
	UniPros            []Item `json:"uniPros"`
	UniCons            []Item `json:"uniCons"`
	RecommendedCourses []Item `json:"recommendedCourses"`
	Achievements       []Item `json:"achievements"`
	Preparation        []Item `json:"preparation"`

	Contact    Contact `json:"contact"`
	DatePosted string  `json:"datePosted"`
}

func newDoc(request *http.Request, loc locale.Locale, e *Experience) doc {
	return doc{
		ID:                 e.ID.String(),
		Photo:              media.Resolve(request.Context(), e.Photo),
		Degree:             e.Degree,
		CurriculumLanguage: e.CurriculumLanguage,
		FieldOfStudy:       e.FieldOfStudy,

		Name:            locale.Pick(loc, e.NameTH, e.NameEN),
		University:      locale.Pick(loc, e.UniversityTH, e.UniversityEN),
		Major:           locale.Pick(loc, e.MajorTH, e.MajorEN),
		ShortBio:        locale.Pick(loc, e.ShortBioTH, e.ShortBioEN),
		WhyKorea:        locale.Pick(loc, e.WhyKoreaTH, e.WhyKoreaEN),
		WhyMajor:        locale.Pick(loc, e.WhyMajorTH, e.WhyMajorEN),
		LifeInKorea:     locale.Pick(loc, e.LifeInKoreaTH, e.LifeInKoreaEN),
		Recommendations: locale.Pick(loc, e.RecommendationsTH, e.RecommendationsEN),

		MajorPros:          items(e.MajorPros.Pick(loc)),
		MajorCons:          items(e.MajorCons.Pick(loc)),
		UniPros:            items(e.UniPros.Pick(loc)),
		UniCons:            items(e.UniCons.Pick(loc)),
		RecommendedCourses: items(e.RecommendedCourses.Pick(loc)),
		Achievements:       items(e.Achievements.Pick(loc)),
		Preparation:        items(e.Preparation.Pick(loc)),

		Contact:    e.Contact,
		DatePosted: e.DatePosted.Format("2006-01-02"),
	}
}

// items normalizes a resolved list to [], never null.
func items(resolved []Item) []Item {
	if resolved == nil {
		return []Item{}
	}
	return resolved
}
