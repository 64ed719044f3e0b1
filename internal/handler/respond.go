// Package handler contains the HTTP handlers for the Disha API.
//
// All endpoints speak JSON. Errors flow through ErrorResponse, which maps
// domain error codes to HTTP status codes and masks internal details.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ankitpatil/disha/internal/auth"
	"github.com/ankitpatil/disha/internal/domain"
)

func userFromRequest(r *http.Request) (*domain.User, bool) {
	return auth.UserFromContext(r.Context())
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EPAYMENT, domain.ELIMIT:
		return http.StatusPaymentRequired
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope returned by every endpoint.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ErrorResponse writes an error to the client and logs it. Internal errors
// log at ERROR with the underlying cause; client errors log at INFO.
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	status := ErrorCodeToHTTPStatus(code)

	logError(r, logger, status, code, err)

	var body errorBody
	body.Error.Code = code
	body.Error.Message = domain.ErrorMessage(err)
	respondJSON(w, logger, status, body)
}

func logError(r *http.Request, logger *slog.Logger, status int, code string, err error) {
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"code", code,
		"error", err.Error(),
	}
	if op := domain.ErrorOp(err); op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= 500 {
		logger.Error("request failed", attrs...)
	} else {
		logger.Info("request error", attrs...)
	}
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// decodeJSON reads the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, op string, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid(op, "invalid JSON request body")
	}
	return nil
}

// currentUser pulls the authenticated user off the request context.
func currentUser(r *http.Request, op string) (*domain.User, error) {
	user, ok := userFromRequest(r)
	if !ok {
		return nil, domain.Unauthorized(op, "authentication required")
	}
	return user, nil
}
