// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package scholarship

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsakorea/tsak-api/internal/platform/apperr"
	"github.com/tsakorea/tsak-api/internal/platform/dberr"
)

// fakeRepository is an in-memory [Repository] holding active entries only,
// mirroring the visibility contract of the real store.
type fakeRepository struct {
	scholarships []*Scholarship
}

func (fake *fakeRepository) ListActive(_ context.Context) ([]*Scholarship, error) {
	return fake.scholarships, nil
}

func (fake *fakeRepository) GetActive(_ context.Context, id int) (*Scholarship, error) {
	for _, s := range fake.scholarships {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (fake *fakeRepository) ListActiveByType(_ context.Context, scholarshipType Type) ([]*Scholarship, error) {
	var out []*Scholarship
	for _, s := range fake.scholarships {
		if s.Type == scholarshipType {
			out = append(out, s)
		}
	}
	return out, nil
}

func newTestServer(fake *fakeRepository) *httptest.Server {
	service := NewService(fake, slog.Default())
	router := chi.NewRouter()
	router.Route("/api/scholarships", func(r chi.Router) {
		NewHandler(service).RegisterRoutes(r)
	})
	return httptest.NewServer(router)
}

func seedRepository() *fakeRepository {
	created := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	return &fakeRepository{
		scholarships: []*Scholarship{
			{
				ID:               1,
				NameTH:           "ทุนรัฐบาลเกาหลี",
				NameEN:           "Global Korea Scholarship",
				ProviderTH:       "รัฐบาลเกาหลีใต้",
				ProviderEN:       "Korean Government",
				Benefits:         []string{"ค่าเล่าเรียนเต็มจำนวน", "ตั๋วเครื่องบิน"},
				BenefitsEN:       []string{"Full tuition", "Airfare"},
				DeadlineTH:       "กันยายน 2026",
				DeadlineEN:       "September 2026",
				MonthlyAllowance: "1,000,000 วอน",
				Type:             TypeGovernment,
				FundingType:      []string{"full-tuition", "merit-based"},
				StudyLevel:       []string{"undergraduate", "graduate"},
				FieldOfStudy:     []string{"all-fields"},
				IsActive:         true,
				CreatedAt:        created,
				UpdatedAt:        created,
			},
			{
				ID:           2,
				NameTH:       "ทุนมหาวิทยาลัยโซล",
				ProviderTH:   "Seoul National University",
				DeadlineTH:   "ตลอดปี",
				Type:         TypeUniversity,
				FundingType:  []string{"partial-tuition"},
				StudyLevel:   []string{"masters", "phd"},
				FieldOfStudy: []string{"science"},
				IsActive:     true,
				CreatedAt:    created,
				UpdatedAt:    created,
			},
		},
	}
}

func decodeData[T any](t *testing.T, response *http.Response) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&envelope))
	return envelope.Data
}

func TestHandler_List(t *testing.T) {
	server := newTestServer(seedRepository())
	defer server.Close()

	response, err := http.Get(server.URL + "/api/scholarships")
	require.NoError(t, err)
	defer response.Body.Close()

	require.Equal(t, http.StatusOK, response.StatusCode)
	doc := decodeData[map[string]json.RawMessage](t, response)

	var count int
	require.NoError(t, json.Unmarshal(doc["count"], &count))
	assert.Equal(t, 2, count)

	// Both languages are served raw; nothing is locale-resolved here.
	var scholarships []map[string]any
	require.NoError(t, json.Unmarshal(doc["scholarships"], &scholarships))
	require.Len(t, scholarships, 2)
	assert.Equal(t, "ทุนรัฐบาลเกาหลี", scholarships[0]["name"])
	assert.Equal(t, "Global Korea Scholarship", scholarships[0]["name_en"])
	assert.NotContains(t, scholarships[0], "is_active")
}

func TestHandler_List_Empty(t *testing.T) {
	server := newTestServer(&fakeRepository{})
	defer server.Close()

	response, err := http.Get(server.URL + "/api/scholarships")
	require.NoError(t, err)
	defer response.Body.Close()

	doc := decodeData[listDoc](t, response)
	assert.Zero(t, doc.Count)
	// An empty catalog serializes as [], never null.
	assert.NotNil(t, doc.Scholarships)
}

func TestHandler_Get(t *testing.T) {
	server := newTestServer(seedRepository())
	defer server.Close()

	t.Run("known id", func(t *testing.T) {
		response, err := http.Get(server.URL + "/api/scholarships/1")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusOK, response.StatusCode)
		doc := decodeData[map[string]any](t, response)
		assert.Equal(t, "Korean Government", doc["provider_en"])
		assert.ElementsMatch(t, []any{"Full tuition", "Airfare"}, doc["benefits_en"])
	})

	t.Run("unknown id", func(t *testing.T) {
		response, err := http.Get(server.URL + "/api/scholarships/999")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusNotFound, response.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
		assert.Contains(t, body, "error")
	})

	t.Run("malformed id", func(t *testing.T) {
		response, err := http.Get(server.URL + "/api/scholarships/abc")
		require.NoError(t, err)
		defer response.Body.Close()

		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	})
}

func TestHandler_ByType(t *testing.T) {
	server := newTestServer(seedRepository())
	defer server.Close()

	t.Run("filters by provider type", func(t *testing.T) {
		response, err := http.Get(server.URL + "/api/scholarships/type/university")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusOK, response.StatusCode)
		doc := decodeData[typedListDoc](t, response)
		assert.Equal(t, TypeUniversity, doc.Type)
		assert.Equal(t, 1, doc.Count)
		require.Len(t, doc.Scholarships, 1)
		assert.Equal(t, 2, doc.Scholarships[0].ID)
	})

	t.Run("empty match still succeeds", func(t *testing.T) {
		response, err := http.Get(server.URL + "/api/scholarships/type/private")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusOK, response.StatusCode)
		doc := decodeData[typedListDoc](t, response)
		assert.Zero(t, doc.Count)
		assert.NotNil(t, doc.Scholarships)
	})

	t.Run("unknown type is a client error", func(t *testing.T) {
		response, err := http.Get(server.URL + "/api/scholarships/type/corporate")
		require.NoError(t, err)
		defer response.Body.Close()

		require.Equal(t, http.StatusBadRequest, response.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
		assert.Equal(t,
			"Invalid type. Must be one of: government, university, private, organization",
			body["error"],
		)
	})
}

func TestScholarship_Validate(t *testing.T) {
	valid := func() *Scholarship {
		return &Scholarship{
			NameTH:       "ทุนทดสอบ",
			ProviderTH:   "ผู้ให้ทุน",
			DeadlineTH:   "มีนาคม 2026",
			Type:         TypePrivate,
			FundingType:  []string{"need-based"},
			StudyLevel:   []string{"all-levels"},
			FieldOfStudy: []string{"business"},
		}
	}

	t.Run("valid entry passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("off-vocabulary multi-select fails", func(t *testing.T) {
		s := valid()
		s.FundingType = []string{"need-based", "crowdfunded"}
		err := s.Validate()
		require.Error(t, err)

		appError := apperr.As(err)
		require.NotNil(t, appError)
		require.Len(t, appError.Details, 1)
		assert.Equal(t, "funding_type", appError.Details[0].Field)
		assert.Contains(t, appError.Details[0].Message, "crowdfunded")
	})

	t.Run("unknown type fails", func(t *testing.T) {
		s := valid()
		s.Type = Type("corporate")
		assert.Error(t, s.Validate())
	})
}
