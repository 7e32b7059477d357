// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package event

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsakorea/tsak-api/internal/platform/dberr"
	"github.com/tsakorea/tsak-api/internal/platform/middleware"
)

type fakeRepository struct {
	events map[int]*Event
}

func (fake *fakeRepository) List(_ context.Context) ([]*Event, error) {
	var out []*Event
	for _, e := range fake.events {
		out = append(out, e)
	}
	return out, nil
}

func (fake *fakeRepository) Get(_ context.Context, id int) (*Event, error) {
	e, ok := fake.events[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return e, nil
}

func newTestServer(fake *fakeRepository, baseURL string) *httptest.Server {
	service := NewService(fake, slog.Default())
	router := chi.NewRouter()
	router.Use(middleware.BaseURL(baseURL))
	router.Route("/api/events", func(r chi.Router) {
		NewHandler(service).RegisterRoutes(r)
	})
	return httptest.NewServer(router)
}

func TestHandler_List_Empty(t *testing.T) {
	server := newTestServer(&fakeRepository{events: map[int]*Event{}}, "")
	defer server.Close()

	response, err := http.Get(server.URL + "/api/events")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)

	// An empty listing serializes as [], never null.
	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
}

func decodeData[T any](t *testing.T, response *http.Response) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	return envelope.Data
}

func TestHandler_Get_MediaResolution(t *testing.T) {
	fake := &fakeRepository{events: map[int]*Event{
		7: {
			ID:           7,
			TitleTH:      "งานเลี้ยงปีใหม่",
			TitleEN:      "New Year Party",
			Image:        "/media/events/party.jpg",
			Date:         "31.12.2025",
			Status:       StatusOpen,
			OrderingType: OrderingDate,
			Sponsors: []SponsorRef{
				{Name: "สถานเอกอัครราชทูต", Logo: "/media/sponsors/logos/embassy.png"},
				{Name: "No Logo Co", Logo: ""},
			},
			Gallery: []string{"/media/events/gallery/1.jpg", "", "/media/events/gallery/2.jpg"},
		},
	}}

	server := newTestServer(fake, "https://api.tsak.or.kr")
	defer server.Close()

	response, err := http.Get(server.URL + "/api/events/7")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)
	doc := decodeData[eventDoc](t, response)

	assert.Equal(t, "7", doc.ID)
	require.NotNil(t, doc.ImageURL)
	assert.Equal(t, "https://api.tsak.or.kr/media/events/party.jpg", *doc.ImageURL)

	// Blank gallery entries are dropped, the rest become absolute URLs.
	assert.Equal(t, []string{
		"https://api.tsak.or.kr/media/events/gallery/1.jpg",
		"https://api.tsak.or.kr/media/events/gallery/2.jpg",
	}, doc.ImageDir)

	require.Len(t, doc.Sponsors, 2)
	require.NotNil(t, doc.Sponsors[0].LogoURL)
	assert.Nil(t, doc.Sponsors[1].LogoURL)
}

func TestHandler_Get_NullMedia(t *testing.T) {
	fake := &fakeRepository{events: map[int]*Event{
		1: {ID: 1, TitleTH: "ไม่มีรูป", Date: "TBA", Status: StatusEnded, OrderingType: OrderingDate},
	}}

	server := newTestServer(fake, "")
	defer server.Close()

	response, err := http.Get(server.URL + "/api/events/1")
	require.NoError(t, err)
	defer response.Body.Close()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))

	// Absent media serializes as JSON null, never as "".
	assert.Nil(t, envelope.Data["imageUrl"])
	assert.Nil(t, envelope.Data["organizerLogoUrl"])

	// A gallery with zero usable entries is null, never [].
	assert.Nil(t, envelope.Data["imageDir"])
}

func TestHandler_Get_NotFound(t *testing.T) {
	server := newTestServer(&fakeRepository{events: map[int]*Event{}}, "")
	defer server.Close()

	response, err := http.Get(server.URL + "/api/events/99")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusNotFound, response.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Contains(t, body, "error")
}

func TestHandler_List_DisplayOrder(t *testing.T) {
	fake := &fakeRepository{events: map[int]*Event{
		1: {ID: 1, OrderingType: OrderingDate, Date: "01.01.2024", Status: StatusEnded},
		2: {ID: 2, OrderingType: OrderingManual, Order: 0, Date: "TBA", Status: StatusOpen},
		3: {ID: 3, OrderingType: OrderingDate, Date: "15.06.2025", Status: StatusClosed},
	}}

	server := newTestServer(fake, "")
	defer server.Close()

	response, err := http.Get(server.URL + "/api/events")
	require.NoError(t, err)
	defer response.Body.Close()

	docs := decodeData[[]eventDoc](t, response)
	require.Len(t, docs, 3)

	// Curated block first, then chronological, newest first.
	assert.Equal(t, "2", docs[0].ID)
	assert.Equal(t, "3", docs[1].ID)
	assert.Equal(t, "1", docs[2].ID)
}
