// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

package media_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsakorea/tsak-api/internal/platform/ctxutil"
	"github.com/tsakorea/tsak-api/internal/platform/media"
)

func TestResolve(t *testing.T) {
	base := ctxutil.WithBaseURL(context.Background(), "https://api.tsak.or.kr")

	tests := []struct {
		name string
		ctx  context.Context
		path string
		want *string
	}{
		{"absolute_with_base", base, "/media/members/tsak.png", ptr("https://api.tsak.or.kr/media/members/tsak.png")},
		{"missing_leading_slash", base, "media/members/tsak.png", ptr("https://api.tsak.or.kr/media/members/tsak.png")},
		{"no_base_keeps_stored_path", context.Background(), "/media/members/tsak.png", ptr("/media/members/tsak.png")},
		{"empty_reference_is_null", base, "", nil},
		{"blank_reference_is_null", base, "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := media.Resolve(tt.ctx, tt.path)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

/*
TestResolveAll verifies the null-not-empty rule for media collections:
a gallery where every entry has an empty reference yields nil, not [].
*/
func TestResolveAll(t *testing.T) {
	base := ctxutil.WithBaseURL(context.Background(), "http://localhost:8080")

	assert.Nil(t, media.ResolveAll(base, nil))
	assert.Nil(t, media.ResolveAll(base, []string{"", "  ", ""}))

	urls := media.ResolveAll(base, []string{"/media/events/a.jpg", "", "/media/events/b.jpg"})
	assert.Equal(t, []string{
		"http://localhost:8080/media/events/a.jpg",
		"http://localhost:8080/media/events/b.jpg",
	}, urls)
}

func ptr(s string) *string { return &s }
