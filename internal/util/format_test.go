package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "0 courses", Pluralize(0, "course"))
	assert.Equal(t, "1 course", Pluralize(1, "course"))
	assert.Equal(t, "2,000 milestones", Pluralize(2000, "milestone"))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"zero", 0, "0ms"},
		{"millis", 250 * time.Millisecond, "250ms"},
		{"save delay", 1500 * time.Millisecond, "1.5s"},
		{"minutes", 5 * time.Minute, "5m"},
		{"hours", 2*time.Hour + 30*time.Minute, "2h 30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}
