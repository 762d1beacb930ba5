package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSessionCommand_ScriptedOrder(t *testing.T) {
	var out bytes.Buffer
	cmd := NewSessionCommand(Config{
		SettingsPath: filepath.Join(t.TempDir(), "absent.yaml"),
		Order:        "A3, C3",
		ShowAlerts:   true,
		Out:          &out,
	})

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Failed to execute scripted session: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"initializing stock...\n",
		"stock +: A1\n",
		"order: A3, C3\n",
		"-> assembled package: [A3, C3]\n",
		"--- alert journal ---\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, text)
		}
	}

	// The default seed holds two C3 items; withdrawing one leaves C below
	// the threshold, so the journal is not empty.
	if !strings.Contains(text, "[ALERT] imminent shortage of C (stock: 1)\n") {
		t.Errorf("Expected low-stock alert for C, got:\n%s", text)
	}
}

func TestSessionCommand_ScriptedIngestAndStock(t *testing.T) {
	var out bytes.Buffer
	cmd := NewSessionCommand(Config{
		SettingsPath: filepath.Join(t.TempDir(), "absent.yaml"),
		Seed:         "B7",
		Ingest:       "Z1, nope",
		ShowStock:    true,
		Out:          &out,
	})

	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Failed to execute scripted session: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"stock +: B7\n",
		"stock +: Z1\n",
		"format error: nope\n",
		"--- stock ---\n",
		"B (1): B7\n",
		"Z (1): Z1\n",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestSessionCommand_SettingsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := "seed: \"A5\"\nalert_capacity: 1\nlow_stock_threshold: 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	var out bytes.Buffer
	cmd := NewSessionCommand(Config{
		SettingsPath: path,
		Order:        "A5",
		ShowAlerts:   true,
		Out:          &out,
	})
	if err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Failed to execute scripted session: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "stock +: A5\n") {
		t.Errorf("Expected seeded A5, got:\n%s", text)
	}
	// Threshold 3 applies: the single A item withdrawn leaves 0 < 3.
	if !strings.Contains(text, "[ALERT] imminent shortage of A (stock: 0)\n") {
		t.Errorf("Expected configured threshold alert, got:\n%s", text)
	}
	// Capacity 1 retains only the most recent alert.
	if got := strings.Count(text, "log: "); got != 1 {
		t.Errorf("Expected 1 journal line with capacity 1, got %d:\n%s", got, text)
	}
}

func TestSessionCommand_MalformedSettingsFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatalf("Failed to write settings: %v", err)
	}

	cmd := NewSessionCommand(Config{SettingsPath: path, ShowStock: true, Out: &bytes.Buffer{}})
	if err := cmd.Execute(context.Background()); err == nil {
		t.Error("Expected malformed settings to fail the session")
	}
}
