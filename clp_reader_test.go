package clp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBoolAcceptsZeroAndOne(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"TRUE", true},
	}

	for _, tc := range tests {
		got, err := ReadBool(tc.token)
		require.NoError(t, err, "token %q", tc.token)
		assert.Equal(t, tc.want, got, "token %q", tc.token)
	}

	_, err := ReadBool("maybe")
	assert.Error(t, err)
}

func TestIntRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 800, -600, 1 << 40} {
		got, err := ReadInt(strconv.Itoa(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1.5, -2.25, 1e9} {
		got, err := ReadFloat64(strconv.FormatFloat(v, 'g', -1, 64))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, v := range []string{"", "hello", "-not-a-flag", "with spaces"} {
		got, err := ReadString(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestSetReaderOverridesDefault(t *testing.T) {
	hexReader := func(token string) (int, error) {
		v, err := strconv.ParseInt(token, 16, 64)
		return int(v), err
	}

	p := NewParser("test")
	mask := NewInt("m", "mask").SetReader(hexReader)
	p.MustAdd(mask)

	require.NoError(t, p.Parse([]string{"--mask", "ff"}))
	assert.Equal(t, 255, mask.Value())
}
