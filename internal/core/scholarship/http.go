// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package scholarship

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tsakorea/tsak-api/internal/platform/request"
	"github.com/tsakorea/tsak-api/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/type/{type}", handler.byType)
	router.Get("/{id}", handler.get)
}

// # Handlers

/*
list handles GET /api/scholarships.

Description: Lists active scholarships ordered by display order then
newest first. Entries carry both languages verbatim.

Returns:
  - 200: {scholarships: [...], count: n}
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	scholarships, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listDoc{
		Scholarships: docs(scholarships),
		Count:        len(scholarships),
	})
}

/*
get handles GET /api/scholarships/{id}.

Description: Fetches a single active scholarship.

Returns:
  - 200: The scholarship object
  - 404: Unknown or inactive scholarship
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

	respond.OK(writer, found)
}

/*
byType handles GET /api/scholarships/type/{type}.

Description: Lists active scholarships of one provider type.

Returns:
  - 200: {type, scholarships: [...], count: n}
  - 400: Unknown provider type
*/
func (handler *Handler) byType(writer http.ResponseWriter, request *http.Request) {
	scholarshipType := Type(requestutil.Param(request, "type"))

	scholarships, err := handler.service.ByType(request.Context(), scholarshipType)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, typedListDoc{
		Type:         scholarshipType,
		Scholarships: docs(scholarships),
		Count:        len(scholarships),
	})
}

// # Projections

// The scholarship payload is the domain object itself; both languages are
// served raw and resolution is left to the caller. docs only normalizes nil
// to an empty array.
func docs(scholarships []*Scholarship) []*Scholarship {
	if scholarships == nil {
		return []*Scholarship{}
	}
	return scholarships
}

type listDoc struct {
	Scholarships []*Scholarship `json:"scholarships"`
	Count        int            `json:"count"`
}

type typedListDoc struct {
	Type         Type           `json:"type"`
	Scholarships []*Scholarship `json:"scholarships"`
	Count        int            `json:"count"`
}
