// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package sponsor

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsakorea/tsak-api/internal/platform/middleware"
)

type fakeRepository struct {
	sponsors []*Sponsor
}

func (fake *fakeRepository) List(_ context.Context) ([]*Sponsor, error) {
	return fake.sponsors, nil
}

func newTestServer(fake *fakeRepository, baseURL string) *httptest.Server {
	service := NewService(fake, slog.Default())
	router := chi.NewRouter()
	router.Use(middleware.BaseURL(baseURL))
	router.Route("/api/sponsors", func(r chi.Router) {
		NewHandler(service).RegisterRoutes(r)
	})
	return httptest.NewServer(router)
}

func decodeData[T any](t *testing.T, response *http.Response) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	return envelope.Data
}

func TestGroupByType(t *testing.T) {
	grouped := GroupByType([]*Sponsor{
		{ID: 1, Type: TypePartner},
		{ID: 2, Type: TypeEmbassy},
		{ID: 3, Type: TypePartner},
		{ID: 4, Type: Type("unknown")},
		{ID: 5, Type: TypeSponsor},
	})

	// Grouping preserves the incoming order inside each group and drops
	// unrecognised types.
	require.Len(t, grouped.Partners, 2)
	assert.Equal(t, 1, grouped.Partners[0].ID)
	assert.Equal(t, 3, grouped.Partners[1].ID)
	require.Len(t, grouped.Embassies, 1)
	require.Len(t, grouped.Sponsors, 1)
	assert.Empty(t, grouped.Networks)
}

func TestHandler_List(t *testing.T) {
	fake := &fakeRepository{
		sponsors: []*Sponsor{
			{
				ID:            1,
				Type:          TypeEmbassy,
				NameTH:        "สถานเอกอัครราชทูตไทย ณ กรุงโซล",
				NameEN:        "Royal Thai Embassy, Seoul",
				DescriptionTH: "หน่วยงานราชการไทย",
				Logo:          "/media/sponsors/logos/embassy.png",
			},
			{
				ID:     2,
				Type:   TypeNetwork,
				NameTH: "เครือข่ายนักเรียนไทย",
			},
		},
	}
	server := newTestServer(fake, "https://api.tsak.or.kr")
	defer server.Close()

	response, err := http.Get(server.URL + "/api/sponsors")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)
	doc := decodeData[map[string]json.RawMessage](t, response)

	// All four groups are always present.
	for _, group := range []string{"embassies", "partners", "networks", "sponsors"} {
		require.Contains(t, doc, group)
	}

	var embassies []map[string]any
	require.NoError(t, json.Unmarshal(doc["embassies"], &embassies))
	require.Len(t, embassies, 1)
	assert.Equal(t, "Royal Thai Embassy, Seoul", embassies[0]["name_en"])
	assert.Equal(t, "https://api.tsak.or.kr/media/sponsors/logos/embassy.png", embassies[0]["logo"])

	// A missing logo serializes as null, not "".
	var networks []map[string]any
	require.NoError(t, json.Unmarshal(doc["networks"], &networks))
	require.Len(t, networks, 1)
	assert.Nil(t, networks[0]["logo"])

	// Empty groups serialize as [], never null.
	var partners []map[string]any
	require.NoError(t, json.Unmarshal(doc["partners"], &partners))
	assert.NotNil(t, partners)
	assert.Empty(t, partners)
}
