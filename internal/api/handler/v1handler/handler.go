// Package v1handler implements the JSON HTTP API.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"plotmarket/internal/locations"
	"plotmarket/internal/orders"
	"plotmarket/internal/plots"
	"plotmarket/internal/users"
	"plotmarket/pkg/logger"
	"plotmarket/pkg/serrors"
	"strconv"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Version is reported by Root.
const Version = "1.0.0"

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Users     users.Users
	Locations locations.Locations
	Plots     plots.Plots
	Orders    orders.Orders
	Storage   Pinger
}

type Handler struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	return &Handler{
		deps:     deps,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatus pairs an ErrorResponse with its HTTP status code.
type ErrorStatus struct {
	StatusCode int
	Response   ErrorResponse
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:        "resource not found",
	serrors.ErrUnauthorized:    "could not validate credentials",
	serrors.ErrForbidden:       "not enough permissions",
	serrors.ErrInactiveAccount: "inactive user",
	serrors.ErrBadRequest:      "bad request",
	serrors.ErrConflict:        "conflict",
	serrors.ErrRateLimited:     "too many requests",
}

func statusOf(kind serrors.Kind) int {
	switch kind {
	case serrors.ErrBadRequest, serrors.ErrConflict, serrors.ErrInactiveAccount:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	}

	return http.StatusInternalServerError
}

// NewError maps err to a response. Errors without a semantic kind are logged
// and reported as internal without exposing the cause.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatus {
	kind := serrors.KindOf(err)
	status := statusOf(kind)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatus{
			StatusCode: status,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	message := defaultMessages[kind]
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		message = serr.Message()
	}

	return &ErrorStatus{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: message},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	if res.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	render.Status(r, res.StatusCode)
	render.JSON(w, r, res.Response)
}

func (h Handler) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// decode reads a JSON body into dst and validates it.
func (h Handler) decode(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return h.check(dst)
}

func (h Handler) check(v any) error {
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return serrors.Wrap(serrors.ErrBadRequest, err,
				"field %s failed validation %q", verrs[0].Field(), verrs[0].Tag())
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request")
	}

	return nil
}

// page reads the skip and limit query parameters.
func page(r *http.Request) (uint, uint, error) {
	skip, err := queryUint(r, "skip")
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		return 0, 0, err
	}

	return skip, limit, nil
}

func queryUint(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a non-negative integer", name)
	}

	return uint(v), nil
}

func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint: nilnil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an integer", name)
	}

	return &v, nil
}

// Root describes the service.
func (h Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, map[string]string{
		"message": "Plot Marketplace API",
		"version": Version,
	})
}

// Health reports whether the database is reachable.
func (h Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Storage.Ping(r.Context()); err != nil {
		logger.Warn(r.Context(), "health check failed", zap.Error(err))
		h.respond(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})

		return
	}

	h.respond(w, r, http.StatusOK, map[string]string{"status": "healthy"})
}

func notFound(what string) error {
	return serrors.With(serrors.ErrNotFound, "%s not found", what)
}
