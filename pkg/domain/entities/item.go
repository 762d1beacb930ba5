package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind is a single-character uppercase category code identifying an item class
type Kind string

// Volume is the non-negative integer size attribute distinguishing items within a kind
type Volume int

// Item represents a stocked unit identified by its kind and volume
type Item struct {
	Kind   Kind
	Volume Volume
}

// NewItem creates a validated Item
func NewItem(kind Kind, volume Volume) (Item, error) {
	if len(kind) != 1 || kind[0] < 'A' || kind[0] > 'Z' {
		return Item{}, fmt.Errorf("kind must be a single uppercase letter, got %q", kind)
	}
	if volume < 0 {
		return Item{}, fmt.Errorf("volume cannot be negative, got %d", volume)
	}
	return Item{Kind: kind, Volume: volume}, nil
}

// String renders the item in code form, e.g. "A3"
func (i Item) String() string {
	return fmt.Sprintf("%s%d", i.Kind, int(i.Volume))
}

// ErrNoStock indicates no item matching the requested kind and volume is held
var ErrNoStock = errors.New("no matching stock")

// FormatError indicates an item code that does not parse into a (kind, volume) pair
type FormatError struct {
	Code string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %s", e.Code)
}

// ParseCode parses an item code of the form "<kind><volume>" (e.g. "a12" -> A12).
// The kind letter is uppercased; the remainder must be a non-negative integer.
// Failures are reported as *FormatError naming the offending code.
func ParseCode(code string) (Item, error) {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return Item{}, &FormatError{Code: code}
	}
	kind := Kind(strings.ToUpper(code[:1]))
	vol, err := strconv.Atoi(code[1:])
	if err != nil || vol < 0 {
		return Item{}, &FormatError{Code: code}
	}
	item, err := NewItem(kind, Volume(vol))
	if err != nil {
		return Item{}, &FormatError{Code: code}
	}
	return item, nil
}

// SplitCodes splits a comma-separated code list into trimmed, non-empty tokens.
// A blank input yields no tokens.
func SplitCodes(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			codes = append(codes, p)
		}
	}
	return codes
}
