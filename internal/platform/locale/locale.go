// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package locale implements the bilingual (Thai/English) content resolution rule
used by every serializer in the TSAK API.

Every bilingual field pair in the data model follows the same law:

  - Thai is the default and is always populated.
  - English is optional; it is served only when the client asks for English
    AND the English value is non-empty.

Centralizing the rule in [Pick] guarantees the fallback is never accidentally
inverted in one of the dozens of call sites.
*/
package locale

import (
	"net/http"

	"golang.org/x/text/cases"
)

// Locale is the requested display language for a request.
type Locale string

const (
	// Thai is the default locale and the fallback for every bilingual field.
	Thai Locale = "th"

	// English is served only where an English value exists.
	English Locale = "en"
)

// FromRequest extracts a [Locale] from the named query parameter.
//
// Unrecognized tokens silently behave as the provided default; there is no
// error condition. Announcements default to [Thai], experiences to [English].
func FromRequest(request *http.Request, param string, fallback Locale) Locale {
	switch Locale(request.URL.Query().Get(param)) {
	case English:
		return English
	case Thai:
		return Thai
	}
	return fallback
}

// Pick resolves a bilingual field pair against the locale.
//
// It returns the English value only when the locale is [English] and the
// English value is non-empty; in every other case it returns the Thai value.
// Pure and side-effect free.
func Pick(loc Locale, th, en string) string {
	if loc == English && en != "" {
		return en
	}
	return th
}

// folder performs full Unicode case folding. Thai has no letter case, so
// folding is an identity for Thai text, while English search terms match
// regardless of case.
var folder = cases.Fold()

// Fold normalizes a string for case-insensitive comparison. The SQL side of
// the search uses ILIKE; folding the needle keeps both sides agreeing on
// case-insensitivity for non-ASCII input.
func Fold(s string) string {
	return folder.String(s)
}
