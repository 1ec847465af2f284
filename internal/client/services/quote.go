package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/habitkeeper/internal/client/kvstore"
	"github.com/dmitrijs2005/habitkeeper/internal/client/models"
	"github.com/dmitrijs2005/habitkeeper/internal/logging"
)

// DateLayout is the calendar-day format used in storage keys.
const DateLayout = "2006-01-02"

// QuoteService hands out one quote per calendar day.
//
// The first call of a day picks from models.Quotes and caches the choice
// under tim_thought_<date>; later calls return the cached quote. Two
// first calls racing on one store may both pick and the last write wins.
// Old days are never purged.
type QuoteService interface {
	DailyQuote(ctx context.Context, today string) (string, error)
	// Today is the current local date in DateLayout.
	Today() string
}

type quoteService struct {
	store kvstore.Store
	log   logging.Logger
	now   func() time.Time
	pick  func(n int) int
}

// QuoteOption customizes a QuoteService.
type QuoteOption func(*quoteService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) QuoteOption {
	return func(s *quoteService) { s.now = now }
}

// WithPicker replaces the uniform random choice; pick(n) must return [0, n).
func WithPicker(pick func(n int) int) QuoteOption {
	return func(s *quoteService) { s.pick = pick }
}

func NewQuoteService(store kvstore.Store, log logging.Logger, opts ...QuoteOption) QuoteService {
	s := &quoteService{store: store, log: log, now: time.Now, pick: rand.IntN}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *quoteService) Today() string {
	return s.now().Local().Format(DateLayout)
}

func (s *quoteService) DailyQuote(ctx context.Context, today string) (string, error) {
	key := models.QuoteKey(today)

	cached, err := s.store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("load quote: %w", err)
	}
	if len(cached) > 0 {
		return string(cached), nil
	}

	q := models.Quotes[s.pick(len(models.Quotes))]
	if err := s.store.Set(ctx, key, []byte(q)); err != nil {
		return "", fmt.Errorf("save quote: %w", err)
	}
	s.log.Debug(ctx, "picked daily quote", "date", today)
	return q, nil
}
