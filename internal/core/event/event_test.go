// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFirstDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
		ok       bool
	}{
		{"single date", "20.07.2025", time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC), true},
		{"range takes the first token", "20.07.2025 - 23.07.2025", time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC), true},
		{"surrounding whitespace", "  01.01.2026  ", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"free text fails", "every Saturday", time.Time{}, false},
		{"empty fails", "", time.Time{}, false},
		{"ISO format fails", "2025-07-20", time.Time{}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			parsed, ok := parseFirstDate(testCase.raw)
			assert.Equal(t, testCase.ok, ok)
			if testCase.ok {
				assert.Equal(t, testCase.expected, parsed)
			}
		})
	}
}

func TestSortForDisplay_Partition(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	manualLate := &Event{ID: 1, OrderingType: OrderingManual, Order: 5, Date: "01.01.2020", CreatedAt: base}
	manualEarly := &Event{ID: 2, OrderingType: OrderingManual, Order: 1, Date: "01.01.2030", CreatedAt: base}
	datedNew := &Event{ID: 3, OrderingType: OrderingDate, Date: "23.07.2025 - 25.07.2025", CreatedAt: base}
	datedOld := &Event{ID: 4, OrderingType: OrderingDate, Date: "14.02.2024", CreatedAt: base}

	sorted := SortForDisplay([]*Event{datedOld, manualLate, datedNew, manualEarly})

	ids := make([]int, 0, len(sorted))
	for _, e := range sorted {
		ids = append(ids, e.ID)
	}

	// Manual block precedes the date block regardless of dates; within the
	// manual block, the order field wins.
	assert.Equal(t, []int{2, 1, 3, 4}, ids)
}

func TestSortForDisplay_ManualTieBreak(t *testing.T) {
	older := &Event{ID: 1, OrderingType: OrderingManual, Order: 1, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := &Event{ID: 2, OrderingType: OrderingManual, Order: 1, CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	sorted := SortForDisplay([]*Event{older, newer})

	require.Len(t, sorted, 2)
	assert.Equal(t, 2, sorted[0].ID)
}

func TestSortForDisplay_UnparseableAlwaysLast(t *testing.T) {
	parseable := &Event{ID: 1, OrderingType: OrderingDate, Date: "05.05.2023"}
	freeText := &Event{ID: 2, OrderingType: OrderingDate, Date: "TBA"}
	ancient := &Event{ID: 3, OrderingType: OrderingDate, Date: "01.01.1990"}
	blank := &Event{ID: 4, OrderingType: OrderingDate, Date: ""}

	sorted := SortForDisplay([]*Event{freeText, parseable, blank, ancient})

	ids := make([]int, 0, len(sorted))
	for _, e := range sorted {
		ids = append(ids, e.ID)
	}

	// Even the oldest parseable date beats every unparseable entry, and the
	// unparseable entries keep their incoming relative order.
	assert.Equal(t, []int{1, 3, 2, 4}, ids)
}

func TestSortForDisplay_DateDescending(t *testing.T) {
	events := []*Event{
		{ID: 1, OrderingType: OrderingDate, Date: "01.01.2024"},
		{ID: 2, OrderingType: OrderingDate, Date: "15.06.2025"},
		{ID: 3, OrderingType: OrderingDate, Date: "20.07.2025 - 23.07.2025"},
	}

	sorted := SortForDisplay(events)

	ids := make([]int, 0, len(sorted))
	for _, e := range sorted {
		ids = append(ids, e.ID)
	}

	assert.Equal(t, []int{3, 2, 1}, ids)
}

func TestSortForDisplay_DoesNotMutateInput(t *testing.T) {
	input := []*Event{
		{ID: 1, OrderingType: OrderingDate, Date: "01.01.2024"},
		{ID: 2, OrderingType: OrderingManual, Order: 0},
	}

	_ = SortForDisplay(input)

	assert.Equal(t, 1, input[0].ID)
	assert.Equal(t, 2, input[1].ID)
}
