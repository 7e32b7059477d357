// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package experience

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsakorea/tsak-api/internal/platform/locale"
)

func TestItem_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Item
		wantErr bool
	}{
		{
			name:  "plain string",
			input: `"เรียนภาษาเกาหลีก่อนเดินทาง"`,
			want:  Item{Text: "เรียนภาษาเกาหลีก่อนเดินทาง"},
		},
		{
			name:  "title-detail record",
			input: `{"title": "TOPIK", "detail": "Level 4 required for most programs"}`,
			want:  Item{Title: "TOPIK", Detail: "Level 4 required for most programs"},
		},
		{
			name:  "record with empty detail",
			input: `{"title": "Scholarship"}`,
			want:  Item{Title: "Scholarship"},
		},
		{
			name:    "number rejected",
			input:   `42`,
			wantErr: true,
		},
		{
			name:    "nested array rejected",
			input:   `["a", "b"]`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var item Item
			err := json.Unmarshal([]byte(test.input), &item)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, item)
		})
	}
}

func TestItem_MarshalJSON_RoundTrip(t *testing.T) {
	// The stored shape survives a decode/encode round trip: strings stay
	// strings, records stay records.
	source := `{"en":[{"title":"Dorms","detail":"Cheap but strict"},"Good food"],"th":["อาหารดี"]}`

	var list BilingualList
	require.NoError(t, json.Unmarshal([]byte(source), &list))

	encoded, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, source, string(encoded))
}

func TestBilingualList_Pick(t *testing.T) {
	list := BilingualList{
		EN: []Item{{Text: "english entry"}},
		TH: []Item{{Text: "รายการไทย"}},
	}

	t.Run("English when requested and present", func(t *testing.T) {
		picked := list.Pick(locale.English)
		require.Len(t, picked, 1)
		assert.Equal(t, "english entry", picked[0].Text)
	})

	t.Run("Thai by default", func(t *testing.T) {
		picked := list.Pick(locale.Thai)
		require.Len(t, picked, 1)
		assert.Equal(t, "รายการไทย", picked[0].Text)
	})

	t.Run("empty English falls back to Thai", func(t *testing.T) {
		sparse := BilingualList{TH: []Item{{Text: "มีแต่ไทย"}}}
		picked := sparse.Pick(locale.English)
		require.Len(t, picked, 1)
		assert.Equal(t, "มีแต่ไทย", picked[0].Text)
	})
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, DegreeExchange.IsValid())
	assert.False(t, Degree("diploma").IsValid())

	assert.True(t, LanguageMixed.IsValid())
	assert.False(t, Language("thai").IsValid())

	assert.True(t, FieldSocialScience.IsValid())
	assert.False(t, Field("engineering").IsValid())
}
