// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package member

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsakorea/tsak-api/internal/platform/media"
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
}

/*
list handles GET /api/members.

Description: Returns the full roster ordered by position, lastname and
firstname. Department filtering is intentionally left to the client.

Returns:
  - 200: Array of member projections
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, slice.Map(members, func(m *Member) memberDoc {
		return newMemberDoc(request.Context(), m)
	}))
}

// # Projection

type memberDoc struct {
	ID         int        `json:"id"`
	Firstname  string     `json:"firstname"`
	Lastname   string     `json:"lastname"`
	Picture    *string    `json:"picture"`
	University string     `json:"university"`
	Major      string     `json:"major"`
	Position   Position   `json:"position"`
	Department Department `json:"department"`
	Working    bool       `json:"working"`
}

func newMemberDoc(ctx context.Context, m *Member) memberDoc {
	return memberDoc{
		ID:         m.ID,
		Firstname:  m.Firstname,
		Lastname:   m.Lastname,
		Picture:    media.Resolve(ctx, m.Picture),
		University: m.University,
		Major:      m.Major,
		Position:   m.Position,
		Department: m.Department,
		Working:    m.Working,
	}
}
