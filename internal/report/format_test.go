package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name   string
		size   uint64
		binary bool
		want   string
	}{
		{"zero binary", 0, true, "0 B"},
		{"below KiB", 1023, true, "1023 B"},
		{"one KiB", 1024, true, "1.0 KiB"},
		{"four KiB", 4096, true, "4.0 KiB"},
		{"rounded KiB", 1536 + 103, true, "1.6 KiB"},
		{"just below MiB", 1_048_473, true, "1023.9 KiB"},
		{"rounds up to MiB", 1_048_560, true, "1.0 MiB"},
		{"MiB", 5 * 1024 * 1024, true, "5.0 MiB"},
		{"GiB", 3 * 1024 * 1024 * 1024 / 2, true, "1.5 GiB"},
		{"zero decimal", 0, false, "0 B"},
		{"below kB", 999, false, "999 B"},
		{"four kB", 4096, false, "4.1 kB"},
		{"rounds up to MB", 999_960, false, "1.0 MB"},
		{"MB", 2_500_000, false, "2.5 MB"},
		{"TB", 7_000_000_000_000, false, "7.0 TB"},
		{"max", ^uint64(0), true, "16.0 EiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.size, tt.binary))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0", FormatBytes(0))
	assert.Equal(t, "4096", FormatBytes(4096))
}
