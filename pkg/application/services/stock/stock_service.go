// Package stock implements ingestion and withdrawal over the stock ledger.
package stock

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"packstock/pkg/domain/entities"
	"packstock/pkg/domain/repositories"
)

// DefaultLowStockThreshold triggers an alert when a withdrawal leaves a kind
// with strictly fewer items than this.
const DefaultLowStockThreshold = 2

// Service coordinates the stock ledger and the alert log
type Service struct {
	repo      repositories.StockRepository
	alerts    repositories.AlertLog
	reporter  io.Writer
	log       *zap.Logger
	threshold int
}

// NewService creates a stock service. A threshold of zero or less falls back
// to DefaultLowStockThreshold. Operator-facing lines are written to reporter.
func NewService(
	repo repositories.StockRepository,
	alerts repositories.AlertLog,
	reporter io.Writer,
	log *zap.Logger,
	threshold int,
) *Service {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	return &Service{
		repo:      repo,
		alerts:    alerts,
		reporter:  reporter,
		log:       log,
		threshold: threshold,
	}
}

// IngestBatch splits a comma-separated code list and ingests each token
// independently. Malformed tokens are reported and skipped; the batch never
// aborts. A blank input is a no-op.
func (s *Service) IngestBatch(text string) {
	for _, code := range entities.SplitCodes(text) {
		// Each token stands alone; the failure is already reported.
		_ = s.IngestOne(code)
	}
}

// IngestOne parses one item code and appends the item to its kind's queue.
// Returns the *FormatError when the code does not parse.
func (s *Service) IngestOne(code string) error {
	item, err := entities.ParseCode(code)
	if err != nil {
		var fe *entities.FormatError
		if errors.As(err, &fe) {
			fmt.Fprintf(s.reporter, "format error: %s\n", fe.Code)
		}
		s.log.Warn("rejected item code", zap.String("code", code))
		return err
	}

	s.repo.Add(item)
	fmt.Fprintf(s.reporter, "stock +: %s\n", item)
	s.log.Debug("item ingested",
		zap.String("kind", string(item.Kind)),
		zap.Int("volume", int(item.Volume)))
	return nil
}

// Withdraw removes the oldest exact-volume match for the kind. A successful
// withdrawal runs the low-stock check for that kind; falling strictly below
// the threshold records an alert, including when the kind drops to zero.
func (s *Service) Withdraw(kind entities.Kind, volume entities.Volume) (entities.Item, error) {
	item, err := s.repo.Withdraw(kind, volume)
	if err != nil {
		return entities.Item{}, err
	}

	if remaining := s.repo.Count(kind); remaining < s.threshold {
		s.alerts.Record(fmt.Sprintf("imminent shortage of %s (stock: %d)", kind, remaining))
	}
	return item, nil
}

// ItemsFor returns the kind's remaining items oldest-first
func (s *Service) ItemsFor(kind entities.Kind) []entities.Item {
	return s.repo.ItemsFor(kind)
}

// Kinds returns all kinds currently in stock, sorted
func (s *Service) Kinds() []entities.Kind {
	return s.repo.Kinds()
}
