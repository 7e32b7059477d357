// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package locale_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsakorea/tsak-api/internal/platform/locale"
)

/*
TestPick_ThaiDefault verifies that any locale other than English resolves
to the Thai value regardless of the English value.
*/
func TestPick_ThaiDefault(t *testing.T) {
	tests := []struct {
		name string
		loc  locale.Locale
	}{
		{"thai", locale.Thai},
		{"empty_token", locale.Locale("")},
		{"unknown_token", locale.Locale("fr")},
		{"uppercase_en_is_not_english", locale.Locale("EN")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "ประกาศ", locale.Pick(tt.loc, "ประกาศ", "Announcement"))
		})
	}
}

/*
TestPick_EnglishFallback verifies the fallback law: English resolution falls
back to Thai whenever the English value is empty.
*/
func TestPick_EnglishFallback(t *testing.T) {
	// English value present: served as-is.
	assert.Equal(t, "Announcement", locale.Pick(locale.English, "ประกาศ", "Announcement"))

	// English value empty: Thai wins even under locale=en.
	assert.Equal(t, "ประกาศ", locale.Pick(locale.English, "ประกาศ", ""))
}

/*
TestFromRequest covers query-parameter parsing with per-resource defaults.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		param    string
		fallback locale.Locale
		want     locale.Locale
	}{
		{"explicit_en", "/announcements?locale=en", "locale", locale.Thai, locale.English},
		{"explicit_th", "/announcements?locale=th", "locale", locale.Thai, locale.Thai},
		{"missing_defaults_thai", "/announcements", "locale", locale.Thai, locale.Thai},
		{"garbage_defaults_thai", "/announcements?locale=xx", "locale", locale.Thai, locale.Thai},
		{"experiences_default_english", "/experiences", "lang", locale.English, locale.English},
		{"experiences_explicit_th", "/experiences?lang=th", "lang", locale.English, locale.Thai},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, locale.FromRequest(request, tt.param, tt.fallback))
		})
	}
}

/*
TestFold verifies the case folding applied to search needles.
*/
func TestFold(t *testing.T) {
	assert.Equal(t, locale.Fold("WILDFIRE"), locale.Fold("wildfire"))

	// Thai has no letter case; folding is an identity.
	assert.Equal(t, "ไฟป่า", locale.Fold("ไฟป่า"))
}
