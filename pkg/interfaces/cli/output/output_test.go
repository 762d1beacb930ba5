package output

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"packstock/pkg/domain/entities"
	"packstock/pkg/infrastructure/repositories/memory"
)

func TestWriteStock(t *testing.T) {
	repo := memory.NewStockRepository()
	for _, code := range []string{"B2", "A1", "A3"} {
		item, err := entities.ParseCode(code)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", code, err)
		}
		repo.Add(item)
	}

	var buf bytes.Buffer
	WriteStock(&buf, repo)

	want := "--- stock ---\nA (2): A1 A3\nB (1): B2\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestWriteStockEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteStock(&buf, memory.NewStockRepository())

	if !strings.Contains(buf.String(), "empty.\n") {
		t.Errorf("Expected empty marker, got %q", buf.String())
	}
}

func TestWriteAlerts(t *testing.T) {
	log := memory.NewAlertLog(3, io.Discard, zap.NewNop())

	var buf bytes.Buffer
	WriteAlerts(&buf, log)
	if !strings.Contains(buf.String(), "no active alerts.\n") {
		t.Errorf("Expected empty journal marker, got %q", buf.String())
	}

	log.Record("first")
	log.Record("second")
	buf.Reset()
	WriteAlerts(&buf, log)

	want := "--- alert journal ---\nlog: first\nlog: second\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
