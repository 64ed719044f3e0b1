package export

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/kv"
	"github.com/ankitpatil/disha/internal/storage"
)

func newTestService(t *testing.T) (*Service, *entitlement.Engine, *storage.LocalStorage) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.NewLocalStorage(storage.LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files",
	}, logger)
	require.NoError(t, err)

	engine := entitlement.New(kv.NewMemoryStore(), logger)
	return NewService(store, engine, logger), engine, store
}

func testResult(userID string) *domain.AssessmentResult {
	return &domain.AssessmentResult{
		ID:          uuid.New(),
		UserID:      userID,
		QuizID:      "stream_selector",
		Bucket:      "science",
		Answers:     []string{"science", "practical"},
		Result:      json.RawMessage(`{"title":"Science (PCM/PCB)"}`),
		CompletedAt: time.Now().UTC(),
	}
}

func TestExportResult(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	// The free plan includes export_basic.
	result := testResult("user-1")
	url, err := svc.ExportResult(ctx, "user-1", result)
	require.NoError(t, err)
	assert.Contains(t, url, "results/user-1/")

	key := storage.ResultKey("user-1", result.ID)
	reader, info, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "application/json", info.ContentType)

	var stored domain.AssessmentResult
	require.NoError(t, json.NewDecoder(reader).Decode(&stored))
	assert.Equal(t, result.ID, stored.ID)
	assert.Equal(t, "science", stored.Bucket)
}

func TestExportResultPaidPlan(t *testing.T) {
	svc, engine, _ := newTestService(t)
	ctx := context.Background()

	// Pro swaps export_basic for export_advanced; exports still work.
	require.NoError(t, engine.UpgradePlan(ctx, "user-2", domain.PlanPro))

	_, err := svc.ExportResult(ctx, "user-2", testResult("user-2"))
	require.NoError(t, err)

	// Max exports through custom_reports.
	require.NoError(t, engine.UpgradePlan(ctx, "user-2", domain.PlanMax))
	_, err = svc.ExportResult(ctx, "user-2", testResult("user-2"))
	require.NoError(t, err)
}

func TestExportResultReplacesPrevious(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	result := testResult("user-3")
	_, err := svc.ExportResult(ctx, "user-3", result)
	require.NoError(t, err)

	// Re-exporting the same result overwrites rather than failing.
	_, err = svc.ExportResult(ctx, "user-3", result)
	require.NoError(t, err)
}
