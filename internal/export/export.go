// Package export writes assessment results to object storage and hands
// back a download URL. Exports are an entitlement-gated feature.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ankitpatil/disha/internal/domain"
	"github.com/ankitpatil/disha/internal/entitlement"
	"github.com/ankitpatil/disha/internal/metrics"
	"github.com/ankitpatil/disha/internal/storage"
)

// Feature ids that grant export access. Any one suffices: the free plan
// carries export_basic, pro carries export_advanced, and max carries
// custom_reports.
var exportFeatures = []string{"export_basic", "export_advanced", "custom_reports"}

// URLTTL is how long a generated download URL stays valid.
const URLTTL = 15 * time.Minute

// Service exports assessment results for entitled users.
type Service struct {
	store  storage.Storage
	engine *entitlement.Engine
	logger *slog.Logger
}

// NewService creates an export service.
func NewService(store storage.Storage, engine *entitlement.Engine, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		engine: engine,
		logger: logger,
	}
}

// ExportResult serializes a result to JSON, stores it, and returns a
// download URL. Users without an export feature get a forbidden error.
func (s *Service) ExportResult(ctx context.Context, userID string, result *domain.AssessmentResult) (string, error) {
	const op = "export.result"

	allowed, err := s.allowed(ctx, userID)
	if err != nil {
		metrics.ResultExportsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	if !allowed {
		metrics.ResultExportsTotal.WithLabelValues("denied").Inc()
		return "", domain.Forbidden(op, "current plan does not include result export")
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		metrics.ResultExportsTotal.WithLabelValues("error").Inc()
		return "", domain.Internal(err, op, "failed to encode result")
	}

	key := storage.ResultKey(userID, result.ID)
	err = s.store.Put(ctx, key, bytes.NewReader(payload), storage.PutOptions{
		ContentType: "application/json",
		Overwrite:   true,
	})
	if err != nil {
		metrics.ResultExportsTotal.WithLabelValues("error").Inc()
		return "", domain.Internal(err, op, "failed to store export")
	}

	url, err := s.store.URL(ctx, key, URLTTL)
	if err != nil {
		metrics.ResultExportsTotal.WithLabelValues("error").Inc()
		return "", domain.Internal(err, op, "failed to build export URL")
	}

	metrics.ResultExportsTotal.WithLabelValues("success").Inc()
	s.logger.Info("exported assessment result", "user_id", userID, "result_id", result.ID, "key", key)
	return url, nil
}

func (s *Service) allowed(ctx context.Context, userID string) (bool, error) {
	for _, feature := range exportFeatures {
		ok, err := s.engine.CanUseFeature(ctx, userID, feature)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
