package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", DefaultMaxInputSize - 1, false},
		{"Exact Limit", DefaultMaxInputSize, false},
		{"Over Limit", DefaultMaxInputSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(strings.Repeat("a", tt.inputSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Command", "show notes.md", "show notes.md"},
		{"Safe Controls", "open\tsub\r", "open\tsub\r"},
		{"ANSI Code", "list\x1b[2J", "list[2J"},
		{"Null Byte", "open su\x00b", "open sub"},
		{"Bell", "exit\x07", "exit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")

	_, err := SanitizeInput("open 123456")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	_, err = SanitizeInput("list")
	assert.NoError(t, err)
}

func TestSanitizeInput_EnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "lots")

	_, err := SanitizeInput(strings.Repeat("a", DefaultMaxInputSize))
	assert.NoError(t, err)
}

func TestSanitizeInputLimit(t *testing.T) {
	_, err := SanitizeInputLimit("detail a.txt", 5)
	assert.ErrorIs(t, err, ErrInputTooLarge)

	got, err := SanitizeInputLimit("back", 5)
	require.NoError(t, err)
	assert.Equal(t, "back", got)

	// Non-positive limits mean the default.
	_, err = SanitizeInputLimit(strings.Repeat("a", 100), 0)
	assert.NoError(t, err)
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("show \xbd\xb2.txt")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
