package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ankitpatil/disha/internal/auth"
	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/events"
	"github.com/ankitpatil/disha/internal/kv"
)

// passthrough stands in for the auth middleware; tests inject the user
// directly on the request context.
func passthrough(next http.Handler) http.Handler { return next }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEngine() *entitlement.Engine {
	return entitlement.New(kv.NewMemoryStore(), testLogger())
}

func testPublisher() *events.Publisher {
	return events.NewPublisher(nil, "", testLogger())
}

func testUser() *domain.User {
	return &domain.User{ID: "user-1", Email: "student@example.com", Name: "Test Student"}
}

// authedRequest builds a request carrying an authenticated user.
func authedRequest(method, target string, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(auth.WithUser(req.Context(), testUser()))
}

func doRequest(t *testing.T, mux *http.ServeMux, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// errorCode pulls the error code out of an error response body.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorBody
	decodeBody(t, rec, &body)
	return body.Error.Code
}

// fakeResultStore is an in-memory ResultStore for handler tests.
type fakeResultStore struct {
	results []domain.AssessmentResult
}

func (s *fakeResultStore) Save(_ context.Context, result *domain.AssessmentResult) error {
	s.results = append(s.results, *result)
	return nil
}

func (s *fakeResultStore) ListByUser(_ context.Context, userID string) ([]domain.AssessmentResult, error) {
	var out []domain.AssessmentResult
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) GetByID(_ context.Context, userID string, id uuid.UUID) (*domain.AssessmentResult, error) {
	for _, r := range s.results {
		if r.UserID == userID && r.ID == id {
			result := r
			return &result, nil
		}
	}
	return nil, domain.NotFound("fake.results.get", "assessment result", id.String())
}
