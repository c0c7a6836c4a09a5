//go:build unit

package csvsafe_test

import (
	"bytes"
	"log/slog"
	"testing"

	"lead-exchange/internal/pkg/csvsafe"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		want   string
		logged bool
	}{
		{name: "plain value untouched", in: "John", want: "John"},
		{name: "formula trigger stripped", in: "=SUM(A1:A9)", want: "SUM(A1:A9)", logged: true},
		{name: "plus stripped", in: "+1234", want: "1234", logged: true},
		{name: "minus stripped", in: "-cmd", want: "cmd", logged: true},
		{name: "at stripped", in: "@import", want: "import", logged: true},
		{name: "stacked triggers all stripped", in: "=+-@danger", want: "danger", logged: true},
		{name: "interior characters kept", in: "a=b+c", want: "a=b+c"},
		{name: "whitespace trimmed first", in: "  =1+1", want: "1+1", logged: true},
		{name: "empty stays empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			got := csvsafe.Sanitize(logger, "test_field", tc.in)
			assert.Equal(t, tc.want, got)

			if tc.logged {
				assert.Contains(t, buf.String(), "csv_injection_prevention")
				assert.Contains(t, buf.String(), "test_field")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestSanitizePtr(t *testing.T) {
	assert.Equal(t, "", csvsafe.SanitizePtr(nil, "field", nil))

	v := "=danger"
	assert.Equal(t, "danger", csvsafe.SanitizePtr(nil, "field", &v))
}
