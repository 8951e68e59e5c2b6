package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSUIToMist(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0.01", 10_000_000},
		{"1", 1_000_000_000},
		{"1.5", 1_500_000_000},
		{"0.000000001", 1},
		{"0.3", 300_000_000},
		{"1.1", 1_100_000_000},
		{"123456.789012345", 123_456_789_012_345},
		{" 2.25 ", 2_250_000_000},
	}
	for _, tt := range tests {
		got, err := SUIToMist(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSUIToMist_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "0.0000000001", "1.2.3", "99999999999999999999"} {
		_, err := SUIToMist(in)
		assert.Error(t, err, in)
	}
}

func TestMistToSUI(t *testing.T) {
	assert.Equal(t, "0.010000000", MistToSUI(10_000_000))
	assert.Equal(t, "0.024981836", MistToSUI(24_981_836))
	assert.Equal(t, "0.000000000", MistToSUI(0))
	assert.Equal(t, "-0.001997880", SignedMistToSUI(-1_997_880))
}
