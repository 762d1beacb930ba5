// Package output renders ledger state and assembly results as text.
package output

import (
	"fmt"
	"io"

	"packstock/pkg/application/dto"
	"packstock/pkg/domain/entities"
)

// StockLister is the read surface the stock view needs
type StockLister interface {
	Kinds() []entities.Kind
	ItemsFor(kind entities.Kind) []entities.Item
}

// AlertLister is the read surface the alert journal needs
type AlertLister interface {
	List() []entities.Alert
}

// WriteStock renders the remaining stock per kind, oldest-first within a kind
func WriteStock(w io.Writer, stock StockLister) {
	kinds := stock.Kinds()
	fmt.Fprintf(w, "--- stock ---\n")
	if len(kinds) == 0 {
		fmt.Fprintf(w, "empty.\n")
		return
	}
	for _, kind := range kinds {
		items := stock.ItemsFor(kind)
		fmt.Fprintf(w, "%s (%d):", kind, len(items))
		for _, item := range items {
			fmt.Fprintf(w, " %s", item)
		}
		fmt.Fprintf(w, "\n")
	}
}

// WriteAlerts renders the alert journal oldest-first
func WriteAlerts(w io.Writer, alerts AlertLister) {
	fmt.Fprintf(w, "--- alert journal ---\n")
	list := alerts.List()
	if len(list) == 0 {
		fmt.Fprintf(w, "no active alerts.\n")
		return
	}
	for _, alert := range list {
		fmt.Fprintf(w, "log: %s\n", alert.Message)
	}
}

// WriteSummary renders a one-line order summary with its fill rate
func WriteSummary(w io.Writer, result *dto.AssemblyResult) {
	if result == nil {
		return
	}
	fmt.Fprintf(w, "order %s: %d/%d lines fulfilled (fill rate %s)\n",
		result.OrderID,
		len(result.Items),
		result.Requested,
		result.FillRate().StringFixed(2))
}
