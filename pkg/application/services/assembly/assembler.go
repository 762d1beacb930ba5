// Package assembly implements order fulfillment against the stock service.
package assembly

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"packstock/pkg/application/dto"
	"packstock/pkg/application/services/stock"
	"packstock/pkg/domain/entities"
	"packstock/pkg/domain/repositories"
)

// Assembler orchestrates per-line withdrawal and builds the assembled package
type Assembler struct {
	stock    *stock.Service
	alerts   repositories.AlertLog
	reporter io.Writer
	log      *zap.Logger
}

// NewAssembler creates an order assembler
func NewAssembler(
	stockSvc *stock.Service,
	alerts repositories.AlertLog,
	reporter io.Writer,
	log *zap.Logger,
) *Assembler {
	return &Assembler{
		stock:    stockSvc,
		alerts:   alerts,
		reporter: reporter,
		log:      log,
	}
}

// PrepareOrder fulfills a comma-separated order line by line. Each line is
// parsed with the same validation as ingestion; a malformed line is reported
// and skipped, a line with no matching stock records a shortage alert and is
// dropped. The order itself never aborts. The recovered items are returned
// sorted descending by volume, ties keeping recovery order. A blank order is
// a no-op and returns nil.
func (a *Assembler) PrepareOrder(text string) *dto.AssemblyResult {
	codes := entities.SplitCodes(text)
	if len(codes) == 0 {
		return nil
	}

	result := &dto.AssemblyResult{
		OrderID:   uuid.New(),
		Request:   text,
		Items:     make([]entities.Item, 0, len(codes)),
		Requested: len(codes),
	}

	fmt.Fprintf(a.reporter, "order: %s\n", text)

	for _, code := range codes {
		requested, err := entities.ParseCode(code)
		if err != nil {
			var fe *entities.FormatError
			if errors.As(err, &fe) {
				fmt.Fprintf(a.reporter, "format error: %s\n", fe.Code)
			}
			result.Shortages = append(result.Shortages, dto.Shortage{Code: code})
			continue
		}

		item, err := a.stock.Withdraw(requested.Kind, requested.Volume)
		if errors.Is(err, entities.ErrNoStock) {
			a.alerts.Record(fmt.Sprintf("stock shortage: %s", code))
			result.Shortages = append(result.Shortages, dto.Shortage{Code: code})
			continue
		}
		result.Items = append(result.Items, item)
	}

	// Largest volume on top of the output stack; stable so equal volumes
	// keep the order they were recovered in.
	sort.SliceStable(result.Items, func(i, j int) bool {
		return result.Items[i].Volume > result.Items[j].Volume
	})

	fmt.Fprintf(a.reporter, "-> assembled package: %s\n", result.Codes())

	a.log.Info("order assembled",
		zap.String("order_id", result.OrderID.String()),
		zap.Int("requested", result.Requested),
		zap.Int("fulfilled", len(result.Items)),
		zap.String("fill_rate", result.FillRate().StringFixed(2)))

	return result
}
