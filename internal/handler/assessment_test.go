package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitpatil/disha/internal/directory"
	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/export"
	"github.com/ankitpatil/disha/internal/storage"
)

// scienceAnswers is a valid stream selector answer sheet leaning science.
var scienceAnswers = []string{
	"science", "practical", "mathematical", "engineering",
	"systematic", "science_club", "experimenting", "curiosity",
}

func newAssessmentMux(t *testing.T, engine *entitlement.Engine, results ResultStore) *http.ServeMux {
	t.Helper()

	store, err := storage.NewLocalStorage(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files",
	}, testLogger())
	require.NoError(t, err)

	mux := http.NewServeMux()
	exports := export.NewService(store, engine, testLogger())
	NewAssessmentHandler(engine, results, exports, testPublisher(), testLogger()).RegisterRoutes(mux, passthrough)
	return mux
}

func TestListAssessments(t *testing.T) {
	mux := newAssessmentMux(t, testEngine(), &fakeResultStore{})

	rec := doRequest(t, mux, httptest.NewRequest("GET", "/api/assessments", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Assessments []directory.Assessment `json:"assessments"`
	}
	decodeBody(t, rec, &body)
	assert.NotEmpty(t, body.Assessments)

	rec = doRequest(t, mux, httptest.NewRequest("GET", "/api/assessments?category=stream", nil))
	decodeBody(t, rec, &body)
	require.Len(t, body.Assessments, 1)
	assert.Equal(t, "stream_selector", body.Assessments[0].QuizID)
}

func TestGetAssessment(t *testing.T) {
	mux := newAssessmentMux(t, testEngine(), &fakeResultStore{})

	rec := doRequest(t, mux, httptest.NewRequest("GET", "/api/assessments/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, mux, httptest.NewRequest("GET", "/api/assessments/999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListQuestions(t *testing.T) {
	mux := newAssessmentMux(t, testEngine(), &fakeResultStore{})

	rec := doRequest(t, mux, httptest.NewRequest("GET", "/api/quizzes/stream_selector/questions", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Quiz      string `json:"quiz"`
		Questions []struct {
			Prompt string `json:"prompt"`
		} `json:"questions"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "stream_selector", body.Quiz)
	assert.Len(t, body.Questions, 8)

	rec = doRequest(t, mux, httptest.NewRequest("GET", "/api/quizzes/unknown/questions", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteQuiz(t *testing.T) {
	engine := testEngine()
	results := &fakeResultStore{}
	mux := newAssessmentMux(t, engine, results)

	rec := doRequest(t, mux, authedRequest("POST", "/api/quizzes/stream_selector/complete",
		map[string]interface{}{"answers": scienceAnswers}))
	require.Equal(t, http.StatusOK, rec.Code)

	var body completeQuizResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "science", body.Bucket)
	assert.Equal(t, "Science (PCM/PCB)", body.Recommendation.Title)

	// The result is persisted and the free quota charged.
	require.Len(t, results.results, 1)
	assert.Equal(t, "science", results.results[0].Bucket)

	used, err := engine.Usage(context.Background(), "user-1", "basic_assessments")
	require.NoError(t, err)
	assert.Equal(t, 1, used)
}

func TestCompleteQuizRejectsInvalidAnswers(t *testing.T) {
	mux := newAssessmentMux(t, testEngine(), &fakeResultStore{})

	// Too few answers.
	rec := doRequest(t, mux, authedRequest("POST", "/api/quizzes/stream_selector/complete",
		map[string]interface{}{"answers": []string{"science"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Right count, answer not among the question's options.
	bad := append([]string(nil), scienceAnswers...)
	bad[0] = "astrology"
	rec = doRequest(t, mux, authedRequest("POST", "/api/quizzes/stream_selector/complete",
		map[string]interface{}{"answers": bad}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.EINVALID, errorCode(t, rec))
}

func TestCompleteQuizEnforcesFreeQuota(t *testing.T) {
	mux := newAssessmentMux(t, testEngine(), &fakeResultStore{})

	// The free plan caps assessments at 3 per month.
	for i := 0; i < 3; i++ {
		rec := doRequest(t, mux, authedRequest("POST", "/api/quizzes/stream_selector/complete",
			map[string]interface{}{"answers": scienceAnswers}))
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)
	}

	rec := doRequest(t, mux, authedRequest("POST", "/api/quizzes/stream_selector/complete",
		map[string]interface{}{"answers": scienceAnswers}))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Equal(t, domain.ELIMIT, errorCode(t, rec))
}

func TestCompleteQuizUnlimitedOnPro(t *testing.T) {
	engine := testEngine()
	mux := newAssessmentMux(t, engine, &fakeResultStore{})

	require.NoError(t, engine.UpgradePlan(context.Background(), "user-1", domain.PlanPro))

	for i := 0; i < 5; i++ {
		rec := doRequest(t, mux, authedRequest("POST", "/api/quizzes/stream_selector/complete",
			map[string]interface{}{"answers": scienceAnswers}))
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)
	}

	// Nothing is charged against the capped free feature.
	used, err := engine.Usage(context.Background(), "user-1", "basic_assessments")
	require.NoError(t, err)
	assert.Equal(t, 0, used)
}

func TestListResults(t *testing.T) {
	results := &fakeResultStore{}
	mux := newAssessmentMux(t, testEngine(), results)

	rec := doRequest(t, mux, authedRequest("POST", "/api/quizzes/career_compass/complete",
		map[string]interface{}{"answers": []string{
			"remote", "growth", "team", "technical", "flexible",
			"technical", "moderate", "technology", "systematic", "expert",
		}}))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, mux, authedRequest("GET", "/api/assessments/results", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []domain.AssessmentResult `json:"results"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "technology", body.Results[0].Bucket)
}

func TestExportResult(t *testing.T) {
	results := &fakeResultStore{}
	mux := newAssessmentMux(t, testEngine(), results)

	rec := doRequest(t, mux, authedRequest("POST", "/api/quizzes/stream_selector/complete",
		map[string]interface{}{"answers": scienceAnswers}))
	require.Equal(t, http.StatusOK, rec.Code)

	var completed completeQuizResponse
	decodeBody(t, rec, &completed)

	rec = doRequest(t, mux, authedRequest("POST", "/api/assessments/results/"+completed.ResultID.String()+"/export", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		URL       string `json:"url"`
		ExpiresIn int    `json:"expires_in"`
	}
	decodeBody(t, rec, &body)
	assert.Contains(t, body.URL, "results/user-1/")
	assert.Equal(t, int(export.URLTTL.Seconds()), body.ExpiresIn)
}

func TestExportResultNotFound(t *testing.T) {
	mux := newAssessmentMux(t, testEngine(), &fakeResultStore{})

	rec := doRequest(t, mux, authedRequest("POST", "/api/assessments/results/not-a-uuid/export", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, mux, authedRequest("POST", "/api/assessments/results/9d2c7d3e-3f62-4af0-9d7e-15d6a69ad3a1/export", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDirectoryEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	NewDirectoryHandler(testLogger()).RegisterRoutes(mux)

	rec := doRequest(t, mux, httptest.NewRequest("GET", "/api/colleges?search=institute+of+technology", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var colleges struct {
		Colleges []directory.College `json:"colleges"`
	}
	decodeBody(t, rec, &colleges)
	require.Len(t, colleges.Colleges, 1)
	assert.Equal(t, "Indian Institute of Technology Delhi", colleges.Colleges[0].Name)

	rec = doRequest(t, mux, httptest.NewRequest("GET", "/api/careers?category=Technology", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var careers struct {
		Careers []directory.Career `json:"careers"`
	}
	decodeBody(t, rec, &careers)
	require.NotEmpty(t, careers.Careers)

	rec = doRequest(t, mux, httptest.NewRequest("GET", "/api/scholarships/999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
