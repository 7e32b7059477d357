// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction, ensuring
consistent error handling and type safety.
*/
package requestutil

import (
	"strconv"

	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tsakorea/tsak-api/internal/platform/apperr"
)

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as a positive integer.

Returns:
  - int: The parsed identifier
  - error: apperr.ValidationError if the segment is not a positive integer
*/
func IntParam(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Invalid identifier: " + raw)
	}

	return id, nil
}

/*
UUIDParam retrieves a named URL parameter and parses it as a UUID.

Returns:
  - uuid.UUID: The parsed identifier
  - error: apperr.ValidationError if the segment is not a valid UUID
*/
func UUIDParam(request *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(request, name)

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.ValidationError("Invalid identifier: " + raw)
	}

	return id, nil
}
