// ABOUTME: Output formats and shared text helpers for rendering results.
// ABOUTME: Markdown is for people and chat clients, JSON for charting and scripts.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/harperreed/fitness/internal/training"
)

// Format selects how a query result is rendered.
type Format string

const (
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// ParseFormat reads a response_format value. Empty selects def.
func ParseFormat(s string, def Format) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	}
	return "", &training.ValidationError{
		Field:   "response_format",
		Message: fmt.Sprintf("%q is not one of markdown, json", s),
	}
}

// JSONText renders v as indented JSON.
func JSONText(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data), nil
}

// ProgressBar draws a 10-cell bar of grams against target and returns it
// with the rounded percentage.
func ProgressBar(grams, target int) (string, int) {
	pct := int(math.Round(float64(grams) / float64(target) * 100))
	filled := min(max(pct/10, 0), 10)
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled), pct
}

// Stars draws a 1-5 score as filled and empty stars.
func Stars(n int) string {
	n = min(max(n, 0), 5)
	return strings.Repeat("⭐", n) + strings.Repeat("☆", 5-n)
}

// Error turns a user-facing error into a message. Other errors are
// reported with their full chain.
func Error(err error) string {
	switch {
	case errors.Is(err, training.ErrNotConfirmed):
		return "Deletion not confirmed. Set confirm=true to delete."
	case errors.Is(err, training.ErrNoChanges):
		return "No fields to update provided."
	}
	return "Error: " + err.Error()
}

// lbs formats a weight without trailing zeros.
func lbs(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncate cuts s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// cell keeps table cells on one line.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "/")
}

// nonNil keeps empty JSON lists as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
