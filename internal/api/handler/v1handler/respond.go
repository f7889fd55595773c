package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"journal/pkg/domain"
	"journal/pkg/errtrack"
	"journal/pkg/logger"
	"journal/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//nolint: gochecknoglobals
var (
	validate = validator.New()

	defaultMessages = map[serrors.Kind]string{
		serrors.ErrNotFound:        "resource not found",
		serrors.ErrUnauthorized:    "authentication required",
		serrors.ErrForbidden:       "forbidden",
		serrors.ErrBadRequest:      "invalid request",
		serrors.ErrConflict:        "conflict",
		serrors.ErrPaymentRequired: "Explorer Pro required",
		serrors.ErrTimeout:         "request timed out",
		serrors.ErrUnavailable:     "service unavailable",
		serrors.ErrRateLimited:     "too many requests",
	}
)

const internalMessage = "internal server error"

// WriteError renders err as {"code": KIND, "message": text} with the status of
// its kind. Errors without a kind and all 5xx are logged and reported, and
// errors without a kind never expose their text.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	kind, se := serrors.KindOf(err)
	status := serrors.StatusCode(err)

	message := ""
	if se != nil {
		message = se.Message()
	}
	if message == "" {
		message = defaultMessages[kind]
	}
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.String("code", kind.Error()))
		errtrack.Capture(ctx, err, map[string]string{"code": kind.Error()})
		if se == nil || kind == serrors.ErrInternal || message == "" {
			message = internalMessage
		}
	}

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("code")
	e.Str(kind.Error())
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decode reads a JSON body into dst, rejecting unknown fields, and runs the
// struct's validate tags.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, h.options.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "request body must be a single JSON object")
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]

			return serrors.With(serrors.ErrBadRequest, "field %s failed %s validation", fe.Field(), fe.Tag())
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// page reads the cursor and limit query parameters.
func page(r *http.Request) (string, uint, error) {
	q := r.URL.Query()
	var limit uint
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return "", 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
		}
		limit = uint(n)
	}

	return q.Get("cursor"), limit, nil
}

func pathID[T ~[16]byte](r *http.Request, name string) (T, error) {
	id, err := domain.ParseID[T](chi.URLParam(r, name))
	if err != nil {
		return id, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

func floatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "query parameter %s must be a number", name)
	}

	return f, nil
}

// listResponse is a page of items with the cursor of the next page.
type listResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

func newList[S any, T any](items []S, cursor string, convert func(S) T) listResponse[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}

	return listResponse[T]{Items: out, NextCursor: cursor}
}

func noContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
