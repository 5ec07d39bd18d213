package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"250ms", 250 * time.Millisecond},
		{"30s", 30 * time.Second},
		{"15m", 15 * time.Minute},
		{"2h", 2 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"2w", 2 * 7 * 24 * time.Hour},
		{"1y", time.Duration(365.25 * 24 * float64(time.Hour))},
		{"3600", 3600 * time.Second},
		{"0", 0},
		{"15M", 15 * time.Minute},
		{"7D", 7 * 24 * time.Hour},
		{" 15m ", 15 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExpiry(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpiry_Invalid(t *testing.T) {
	for _, input := range []string{"", "m", "15x", "-5m", "1.5h", "15 m", "abc"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseExpiry(input)
			assert.Error(t, err)
		})
	}
}
