package util

import (
	"fmt"
	"time"
)

// FormatNumber groups thousands with commas
func FormatNumber(n int) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	result := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, s[i])
	}
	return string(result)
}

// Pluralize returns "1 course", "3 courses"
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%s %s", FormatNumber(n), noun)
	}
	return fmt.Sprintf("%s %ss", FormatNumber(n), noun)
}

// FormatDuration renders short durations for status lines
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % 60
		if hours > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dm", minutes)
	}
}
