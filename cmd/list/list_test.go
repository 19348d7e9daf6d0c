package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		exp  string
	}{
		{0, "0 bytes"},
		{1, "1 bytes"},
		{999, "999 bytes"},
		{1000, "1,000 bytes"},
		{1023, "1,023 bytes"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{10240, "10.0 KB"},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, formatSize(test.size))
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		n   int64
		exp string
	}{
		{0, "0"},
		{100, "100"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, groupDigits(test.n))
	}
}
