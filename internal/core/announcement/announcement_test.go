// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package announcement

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter_AllSentinel(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		check    func(t *testing.T, f Filter)
	}{
		{
			name:     "All semester behaves as absent",
			rawQuery: "semester=All",
			check: func(t *testing.T, f Filter) {
				assert.Empty(t, f.Semester)
			},
		},
		{
			name:     "All department behaves as absent",
			rawQuery: "department=All",
			check: func(t *testing.T, f Filter) {
				assert.Empty(t, f.Department)
			},
		},
		{
			name:     "real values survive",
			rawQuery: "semester=spring_2025&department=it",
			check: func(t *testing.T, f Filter) {
				assert.Equal(t, "spring_2025", f.Semester)
				assert.Equal(t, "it", f.Department)
			},
		},
		{
			name:     "lowercase all is not the sentinel",
			rawQuery: "semester=all",
			check: func(t *testing.T, f Filter) {
				assert.Equal(t, "all", f.Semester)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			values, err := url.ParseQuery(testCase.rawQuery)
			require.NoError(t, err)
			testCase.check(t, ParseFilter(values))
		})
	}
}

func TestParseFilter_LenientDates(t *testing.T) {
	t.Run("valid bounds are parsed", func(t *testing.T) {
		values, _ := url.ParseQuery("date_from=2025-01-01&date_to=2025-06-30")
		f := ParseFilter(values)

		require.NotNil(t, f.DateFrom)
		require.NotNil(t, f.DateTo)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *f.DateTo)
	})

	t.Run("malformed bound is skipped, not rejected", func(t *testing.T) {
		values, _ := url.ParseQuery("date_from=yesterday&date_to=2025-06-30&department=it")
		f := ParseFilter(values)

		assert.Nil(t, f.DateFrom)
		require.NotNil(t, f.DateTo)
		assert.Equal(t, "it", f.Department)
	})

	t.Run("inverted window is kept as-is", func(t *testing.T) {
		values, _ := url.ParseQuery("date_from=2025-12-31&date_to=2025-01-01")
		f := ParseFilter(values)

		require.NotNil(t, f.DateFrom)
		require.NotNil(t, f.DateTo)
		assert.True(t, f.DateFrom.After(*f.DateTo))
	})
}

func TestParseFilter_SortNormalization(t *testing.T) {
	tests := []struct {
		name          string
		rawQuery      string
		expectedBy    string
		expectedOrder string
	}{
		{"defaults", "", SortByDate, SortDesc},
		{"views ascending", "sort_by=views&sort_order=asc", SortByViews, SortAsc},
		{"unknown field collapses to date", "sort_by=title", SortByDate, SortDesc},
		{"unknown order collapses to desc", "sort_order=sideways", SortByDate, SortDesc},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			values, _ := url.ParseQuery(testCase.rawQuery)
			f := ParseFilter(values)
			assert.Equal(t, testCase.expectedBy, f.SortBy)
			assert.Equal(t, testCase.expectedOrder, f.SortOrder)
		})
	}
}

func TestParseFilter_SearchFolding(t *testing.T) {
	values, _ := url.ParseQuery("search=KOREA")
	assert.Equal(t, "korea", ParseFilter(values).Search)

	// Thai has no letter case; folding must leave it intact.
	thai, _ := url.ParseQuery("search=" + url.QueryEscape("ประกาศ"))
	assert.Equal(t, "ประกาศ", ParseFilter(thai).Search)

	// Surrounding whitespace is trimmed before folding.
	padded, _ := url.ParseQuery("search=" + url.QueryEscape("  Korea  "))
	assert.Equal(t, "korea", ParseFilter(padded).Search)

	// A whitespace-only needle is no search at all.
	blank, _ := url.ParseQuery("search=" + url.QueryEscape("   "))
	assert.Empty(t, ParseFilter(blank).Search)
}

func TestParseFilter_OrderIndependence(t *testing.T) {
	forward, _ := url.ParseQuery("semester=fall_2025&department=pr&sort_by=views")
	backward, _ := url.ParseQuery("sort_by=views&department=pr&semester=fall_2025")

	assert.Equal(t, ParseFilter(forward), ParseFilter(backward))
}

func TestDepartment_IsValid(t *testing.T) {
	for _, d := range []Department{
		DepartmentTSAK, DepartmentExecutive, DepartmentDocumentation,
		DepartmentAccounting, DepartmentLiaison, DepartmentPR,
		DepartmentIT, DepartmentEvents,
	} {
		assert.True(t, d.IsValid(), string(d))
	}

	assert.False(t, Department("finance").IsValid())
	assert.False(t, Department("").IsValid())
}
