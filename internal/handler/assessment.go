package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ankitpatil/disha/internal/directory"
	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/events"
	"github.com/ankitpatil/disha/internal/export"
	"github.com/ankitpatil/disha/internal/metrics"
	"github.com/ankitpatil/disha/internal/quiz"
	"github.com/ankitpatil/disha/internal/recommend"
)

// ResultStore is the persistence surface the assessment handler needs.
// *repository.ResultRepository satisfies it.
type ResultStore interface {
	Save(ctx context.Context, result *domain.AssessmentResult) error
	ListByUser(ctx context.Context, userID string) ([]domain.AssessmentResult, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (*domain.AssessmentResult, error)
}

// Feature ids that grant assessment access without consuming the free
// quota. Checked in order before falling back to the capped free feature.
var uncappedAssessmentFeatures = []string{"unlimited_assessments", "everything_pro"}

// AssessmentHandler serves the assessment listings, quiz completion, and
// stored results.
type AssessmentHandler struct {
	engine    *entitlement.Engine
	results   ResultStore
	exports   *export.Service
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewAssessmentHandler creates an assessment handler.
func NewAssessmentHandler(
	engine *entitlement.Engine,
	results ResultStore,
	exports *export.Service,
	publisher *events.Publisher,
	logger *slog.Logger,
) *AssessmentHandler {
	return &AssessmentHandler{
		engine:    engine,
		results:   results,
		exports:   exports,
		publisher: publisher,
		logger:    logger,
	}
}

// RegisterRoutes registers assessment routes on the mux. Listings are
// public; quiz completion and stored results require authentication.
func (h *AssessmentHandler) RegisterRoutes(mux *http.ServeMux, requireAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/assessments", h.listAssessments)
	mux.HandleFunc("GET /api/assessments/{id}", h.getAssessment)
	mux.HandleFunc("GET /api/quizzes/{quiz}/questions", h.listQuestions)

	mux.Handle("GET /api/assessments/results", requireAuth(http.HandlerFunc(h.listResults)))
	mux.Handle("POST /api/assessments/results/{id}/export", requireAuth(http.HandlerFunc(h.exportResult)))
	mux.Handle("POST /api/quizzes/{quiz}/complete", requireAuth(http.HandlerFunc(h.completeQuiz)))
}

func (h *AssessmentHandler) listAssessments(w http.ResponseWriter, r *http.Request) {
	assessments := directory.Assessments(r.URL.Query().Get("category"))
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"assessments": assessments})
}

func (h *AssessmentHandler) getAssessment(w http.ResponseWriter, r *http.Request) {
	const op = "handler.assessments.get"

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "assessment id must be an integer"))
		return
	}

	assessment := directory.AssessmentByID(id)
	if assessment == nil {
		ErrorResponse(w, r, h.logger, domain.NotFound(op, "assessment", r.PathValue("id")))
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"assessment": assessment})
}

func (h *AssessmentHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	quizID := r.PathValue("quiz")
	questions, err := quiz.Bank(quizID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"quiz":      quizID,
		"questions": questions,
	})
}

type completeQuizRequest struct {
	Answers []string `json:"answers"`
}

// completeQuizResponse carries the recommendation plus the stored result id.
type completeQuizResponse struct {
	ResultID       uuid.UUID         `json:"result_id"`
	Bucket         string            `json:"bucket"`
	Recommendation recommend.Payload `json:"recommendation"`
}

func (h *AssessmentHandler) completeQuiz(w http.ResponseWriter, r *http.Request) {
	const op = "handler.quizzes.complete"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	quizID := r.PathValue("quiz")
	var req completeQuizRequest
	if err := decodeJSON(r, op, &req); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	if err := quiz.ValidateAnswers(quizID, req.Answers); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	if err := h.consumeAssessment(r, user.ID); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	bucket, err := recommend.ClassifyQuiz(quizID, req.Answers)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	result := &domain.AssessmentResult{
		ID:          uuid.New(),
		UserID:      user.ID,
		QuizID:      quizID,
		Bucket:      bucket.ID,
		Answers:     req.Answers,
		CompletedAt: time.Now().UTC(),
	}
	result.Result, err = json.Marshal(bucket.Payload)
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Internal(err, op, "failed to encode recommendation"))
		return
	}

	if err := h.results.Save(r.Context(), result); err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	metrics.QuizzesCompleted.WithLabelValues(quizID, bucket.ID).Inc()
	h.publisher.Publish(r.Context(), events.TypeAssessmentCompleted, user.ID, map[string]string{
		"quiz":      quizID,
		"bucket":    bucket.ID,
		"result_id": result.ID.String(),
	})

	respondJSON(w, h.logger, http.StatusOK, completeQuizResponse{
		ResultID:       result.ID,
		Bucket:         bucket.ID,
		Recommendation: bucket.Payload,
	})
}

// consumeAssessment charges one assessment against the user's plan. Plans
// with an uncapped assessment feature pass through without consuming.
func (h *AssessmentHandler) consumeAssessment(r *http.Request, userID string) error {
	const op = "handler.quizzes.complete"
	ctx := r.Context()

	for _, feature := range uncappedAssessmentFeatures {
		ok, err := h.engine.CanUseFeature(ctx, userID, feature)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	allowed, err := h.engine.TryConsume(ctx, userID, "basic_assessments")
	if err != nil {
		return err
	}
	if !allowed {
		gate, err := h.engine.Gate(ctx, userID, "basic_assessments")
		if err != nil {
			return err
		}
		return domain.LimitReached(op, "basic_assessments", gate.Usage, gate.Limit.N)
	}
	return nil
}

func (h *AssessmentHandler) listResults(w http.ResponseWriter, r *http.Request) {
	const op = "handler.results.list"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	results, err := h.results.ListByUser(r.Context(), user.ID)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{"results": results})
}

func (h *AssessmentHandler) exportResult(w http.ResponseWriter, r *http.Request) {
	const op = "handler.results.export"

	user, err := currentUser(r, op)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "result id must be a UUID"))
		return
	}

	result, err := h.results.GetByID(r.Context(), user.ID, id)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}

	url, err := h.exports.ExportResult(r.Context(), user.ID, result)
	if err != nil {
		ErrorResponse(w, r, h.logger, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"url":        url,
		"expires_in": int(export.URLTTL.Seconds()),
	})
}
