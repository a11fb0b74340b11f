package formatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stubContent struct{}

func (stubContent) ToHTML() (string, error)     { return "<p>html</p>", nil }
func (stubContent) ToText() (string, error)     { return "text", nil }
func (stubContent) ToMarkdown() (string, error) { return "markdown", nil }
func (stubContent) ToJSON() ([]byte, error)     { return []byte(`{"k":"v"}`), nil }
func (stubContent) ToCSV() (string, error)      { return "a,b\n", nil }

type stubTable struct{ stubContent }

func (stubTable) ToTable() (string, error) { return "table", nil }

func TestFormat(t *testing.T) {
	testCases := []struct {
		format   string
		expected string
	}{
		{"html", "<p>html</p>"},
		{"text", "text"},
		{"markdown", "markdown"},
		{"json", `{"k":"v"}`},
		{"csv", "a,b\n"},
		{"table", "table"},
	}
	for _, tc := range testCases {
		got, err := Format(stubTable{}, tc.format)
		require.NoError(t, err, tc.format)
		require.Equal(t, tc.expected, got, tc.format)
	}
}

func TestFormatErrors(t *testing.T) {
	_, err := Format(stubContent{}, "table")
	require.Error(t, err)

	_, err = Format(stubContent{}, "yaml")
	require.EqualError(t, err, "unsupported output format: yaml")
}
