// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package sponsor

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tsakorea/tsak-api/internal/platform/media"
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
}

/*
list handles GET /api/sponsors.

Description: Returns the whole supporter directory in one response,
grouped by type. Every group is present even when empty.

Returns:
  - 200: {embassies: [...], partners: [...], networks: [...], sponsors: [...]}
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	grouped, err := handler.service.Grouped(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newGroupedDoc(request.Context(), grouped))
}

// # Projections

type sponsorDoc struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	NameEN        string  `json:"name_en"`
	Description   string  `json:"description"`
	DescriptionEN string  `json:"description_en"`
	Logo          *string `json:"logo"`
}

type groupedDoc struct {
	Embassies []sponsorDoc `json:"embassies"`
	Partners  []sponsorDoc `json:"partners"`
	Networks  []sponsorDoc `json:"networks"`
	Sponsors  []sponsorDoc `json:"sponsors"`
}

func newGroupedDoc(ctx context.Context, grouped *Grouped) groupedDoc {
	return groupedDoc{
		Embassies: newDocs(ctx, grouped.Embassies),
		Partners:  newDocs(ctx, grouped.Partners),
		Networks:  newDocs(ctx, grouped.Networks),
		Sponsors:  newDocs(ctx, grouped.Sponsors),
	}
}

// newDocs serializes one group, always as an array.
func newDocs(ctx context.Context, sponsors []*Sponsor) []sponsorDoc {
	docs := make([]sponsorDoc, 0, len(sponsors))
	for _, s := range sponsors {
		docs = append(docs, sponsorDoc{
			ID:            s.ID,
			Name:          s.NameTH,
			NameEN:        s.NameEN,
			Description:   s.DescriptionTH,
			DescriptionEN: s.DescriptionEN,
			Logo:          media.Resolve(ctx, s.Logo),
		})
	}
	return docs
}
