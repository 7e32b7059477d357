// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package media resolves stored media references into client-facing URLs.

Stored references are site-relative paths (e.g. "/media/sponsors/logos/x.png").
When the request context carries a public base URL the reference becomes an
absolute URL anchored to the serving host; otherwise the stored path is served
as-is so that local development still works without configuration.

A record with no media resolves to nil (JSON null), never the empty string.
*/
package media

import (
	"context"
	"strings"

	"github.com/tsakorea/tsak-api/internal/platform/ctxutil"
)

// Resolve turns a stored media path into a client-facing URL.
//
// It returns nil when the stored reference is empty or blank, the absolute
// URL when the context carries a base URL, and the stored path otherwise.
func Resolve(ctx context.Context, path string) *string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}

	resolved := join(ctxutil.GetBaseURL(ctx), trimmed)
	return &resolved
}

// ResolveAll maps a slice of stored paths through [Resolve], discarding
// entries with empty references. A collection with zero non-empty entries
// yields nil, never an empty slice.
func ResolveAll(ctx context.Context, paths []string) []string {
	var urls []string
	for _, p := range paths {
		if resolved := Resolve(ctx, p); resolved != nil {
			urls = append(urls, *resolved)
		}
	}
	return urls
}

// join glues a base URL and a site-relative path without doubling slashes.
func join(base, path string) string {
	if base == "" {
		return path
	}
	if strings.HasSuffix(base, "/") {
		base = strings.TrimRight(base, "/")
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
