// Package csvsafe strips spreadsheet formula triggers from exported field
// values. Excel and Sheets execute cells starting with = + - @ (and treat
// leading tab/CR as continuation), so any lead-entered text must be sanitized
// before it lands in a CSV download.
package csvsafe

import (
	"log/slog"
	"strings"
)

var dangerousLeading = map[byte]bool{
	'=': true, '+': true, '-': true, '@': true, '\t': true, '\r': true,
}

// Sanitize removes dangerous leading characters and logs a warning whenever it
// modifies a value, so injection attempts show up in security monitoring.
func Sanitize(logger *slog.Logger, fieldName string, value string) string {
	text := strings.TrimSpace(value)
	original := text

	var stripped []byte
	for len(text) > 0 && dangerousLeading[text[0]] {
		stripped = append(stripped, text[0])
		text = text[1:]
	}

	if len(stripped) > 0 && logger != nil {
		logger.Warn("CSV injection character(s) stripped",
			slog.String("field_name", fieldName),
			slog.String("stripped_characters", string(stripped)),
			slog.String("original_value", truncate(original, 100)),
			slog.String("sanitized_value", truncate(text, 100)),
			slog.String("modification_type", "csv_injection_prevention"),
		)
	}

	return text
}

// SanitizePtr treats nil as the empty field.
func SanitizePtr(logger *slog.Logger, fieldName string, value *string) string {
	if value == nil {
		return ""
	}
	return Sanitize(logger, fieldName, *value)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
