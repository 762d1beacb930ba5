// Package commands wires the ledger services and drives a session.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"packstock/pkg/application/services/assembly"
	"packstock/pkg/application/services/stock"
	"packstock/pkg/infrastructure/config"
	"packstock/pkg/infrastructure/logging"
	"packstock/pkg/infrastructure/repositories/memory"
	"packstock/pkg/interfaces/cli/output"
)

// Config holds configuration for a ledger session
type Config struct {
	SettingsPath string
	Seed         string // overrides the settings seed when non-empty
	Ingest       string // scripted: ingest these codes and exit
	Order        string // scripted: prepare this order and exit
	ShowStock    bool   // scripted: print the stock table
	ShowAlerts   bool   // scripted: print the alert journal
	Verbose      bool
	Out          io.Writer // defaults to os.Stdout
}

// SessionCommand runs either a scripted one-shot session or the
// interactive menu against a freshly wired in-memory ledger.
type SessionCommand struct {
	config Config
}

// NewSessionCommand creates a session command with the given configuration
func NewSessionCommand(config Config) *SessionCommand {
	return &SessionCommand{config: config}
}

// Execute wires the services, seeds the ledger, and runs the session
func (c *SessionCommand) Execute(ctx context.Context) error {
	out := c.config.Out
	if out == nil {
		out = os.Stdout
	}

	settings, err := config.Load(c.config.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger, err := logging.New(c.config.Verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	alertLog := memory.NewAlertLog(settings.AlertCapacity, out, logger)
	stockRepo := memory.NewStockRepository()
	stockSvc := stock.NewService(stockRepo, alertLog, out, logger, settings.LowStockThreshold)
	assembler := assembly.NewAssembler(stockSvc, alertLog, out, logger)

	seed := settings.Seed
	if c.config.Seed != "" {
		seed = c.config.Seed
	}
	if strings.TrimSpace(seed) != "" {
		fmt.Fprintf(out, "initializing stock...\n")
		stockSvc.IngestBatch(seed)
	}

	if c.scripted() {
		return c.runScripted(out, stockSvc, assembler, alertLog)
	}
	return c.runInteractive(ctx, out, stockSvc, assembler, alertLog, logger)
}

func (c *SessionCommand) scripted() bool {
	return c.config.Ingest != "" || c.config.Order != "" || c.config.ShowStock || c.config.ShowAlerts
}

func (c *SessionCommand) runScripted(
	out io.Writer,
	stockSvc *stock.Service,
	assembler *assembly.Assembler,
	alertLog *memory.AlertLog,
) error {
	if c.config.Ingest != "" {
		stockSvc.IngestBatch(c.config.Ingest)
	}
	if c.config.Order != "" {
		result := assembler.PrepareOrder(c.config.Order)
		if c.config.Verbose {
			output.WriteSummary(out, result)
		}
	}
	if c.config.ShowStock {
		output.WriteStock(out, stockSvc)
	}
	if c.config.ShowAlerts {
		output.WriteAlerts(out, alertLog)
	}
	return nil
}

func (c *SessionCommand) runInteractive(
	ctx context.Context,
	out io.Writer,
	stockSvc *stock.Service,
	assembler *assembly.Assembler,
	alertLog *memory.AlertLog,
	logger *zap.Logger,
) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n1. ingest (e.g. A1, B2)\n2. order (e.g. A3, C3)\n3. alerts\n4. stock\n5. quit\n")
		choice, err := promptLine(">")
		if errors.Is(err, ErrPromptCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			text, err := readLine("codes:")
			if err != nil {
				return sessionErr(err)
			}
			stockSvc.IngestBatch(text)
		case "2":
			text, err := readLine("order:")
			if err != nil {
				return sessionErr(err)
			}
			result := assembler.PrepareOrder(text)
			if c.config.Verbose {
				output.WriteSummary(out, result)
			}
		case "3":
			output.WriteAlerts(out, alertLog)
		case "4":
			output.WriteStock(out, stockSvc)
		case "5", "q", "quit":
			return nil
		default:
			logger.Debug("unknown menu choice", zap.String("choice", choice))
			fmt.Fprintf(out, "unknown choice: %s\n", choice)
		}
	}
}

// readLine prompts for one line, treating a cancelled prompt as empty input
// so a stray escape never tears down the session.
func readLine(label string) (string, error) {
	text, err := promptLine(label)
	if errors.Is(err, ErrPromptCancelled) {
		return "", nil
	}
	return text, err
}

func sessionErr(err error) error {
	return fmt.Errorf("read input: %w", err)
}
