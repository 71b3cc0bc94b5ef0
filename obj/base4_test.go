package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase4Padding(t *testing.T) {
	assert.Equal(t, "aaaa", EncodeBase4(0, 4))
	assert.Equal(t, "aaab", EncodeBase4(1, 4))
	assert.Equal(t, "aabd", EncodeBase4(7, 4)) // 7 = 1*4 + 3
}

func TestEncodeBase4OverflowsPaddingRatherThanTruncating(t *testing.T) {
	// 1024 needs 6 base-4 digits; asking for a minimum of 3 must not lose data.
	got := EncodeBase4(1024, 3)
	n, err := DecodeBase4(got)
	require.NoError(t, err)
	assert.Equal(t, 1024, n)
}

func TestBase4RoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 4, 15, 100, 1023} {
		s := EncodeBase4(n, 5)
		got, err := DecodeBase4(s)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestDecodeBase4RejectsInvalidDigit(t *testing.T) {
	_, err := DecodeBase4("axyz")
	require.Error(t, err)
}
