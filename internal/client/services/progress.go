package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/dmitrijs2005/habitkeeper/internal/common"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

// ProgressService tracks the Wren & Martin chapter counter, always within
// [0, models.MaxChapters].
type ProgressService interface {
	// GetProgress reads the stored counter clamped into range. Absent or
	// unreadable counters are 0.
	GetProgress(ctx context.Context, email string) (int, error)
	// AdjustProgress adds delta, clamps, persists and returns the new value.
	// Going past either end is not an error.
	AdjustProgress(ctx context.Context, email string, delta int) (int, error)
}

type progressService struct {
	store kvstore.Store
	log   logging.Logger
}

func NewProgressService(store kvstore.Store, log logging.Logger) ProgressService {
	return &progressService{store: store, log: log}
}

func (s *progressService) GetProgress(ctx context.Context, email string) (int, error) {
	raw, err := s.store.Get(ctx, models.ProgressKey(email))
	if err != nil {
		return 0, fmt.Errorf("load progress: %w", err)
	}

	n, err := models.DecodeProgress(raw)
	if errors.Is(err, common.ErrorMalformedStoredData) {
		s.log.Warn(ctx, "resetting unreadable progress", "email", email, "error", err)
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return clamp(n, 0, models.MaxChapters), nil
}

func (s *progressService) AdjustProgress(ctx context.Context, email string, delta int) (int, error) {
	cur, err := s.GetProgress(ctx, email)
	if err != nil {
		return 0, err
	}

	next := clamp(cur+delta, 0, models.MaxChapters)
	if err := s.store.Set(ctx, models.ProgressKey(email), models.EncodeProgress(next)); err != nil {
		return 0, fmt.Errorf("save progress: %w", err)
	}
	return next, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
