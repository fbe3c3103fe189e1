package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/wellbeing-tracker/internal/api/validation"
	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// pathUUID parses a UUID path parameter and writes a 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		problem.BadRequest("Invalid " + label + " ID format").Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes and validates a JSON request body, writing the problem
// response itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(dst); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}

// writeServiceError maps domain errors to problem responses. notFound is the
// detail used for domain.ErrNotFound; fallback for anything unrecognised.
func writeServiceError(w http.ResponseWriter, err error, notFound, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(notFound).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict("Resource already exists").Write(w)
	case errors.Is(err, domain.ErrForbidden):
		problem.Forbidden("You are not allowed to perform this action").Write(w)
	case errors.Is(err, domain.ErrUpstream):
		problem.BadGateway("Upstream service failed").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

func parseListFilter(r *http.Request) (domain.ListFilter, []problem.FieldError) {
	var filter domain.ListFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	// Parse 'from' parameter
	if fromStr := q.Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := q.Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	// Parse 'limit' parameter
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = q.Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
