package eyecatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker_Index(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"digits", ">BIP1234", 0},
		{"word characters", "x >BIPab_Z", 2},
		{"more than width", ">BIP12345", 0},
		{"too short", ">BIP123", -1},
		{"space in suffix", ">BIP12 4", -1},
		{"punctuation in suffix", ">BIP12-4", -1},
		{"no angle bracket", "BIP1234", -1},
		{"lower case prefix", ">bip1234", -1},
		{"second occurrence qualifies", ">BIP1 >BIP2222", 6},
		{"overlapping prefix", ">BIP>BIP9999", 4},
		{"empty", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultMarker.Index([]byte(tt.input)))
			assert.Equal(t, tt.want >= 0, DefaultMarker.Match([]byte(tt.input)))
		})
	}
}

func TestNewMarker(t *testing.T) {
	m, err := NewMarker("AMQ", 4)
	require.NoError(t, err)
	assert.Equal(t, "AMQ", m.Prefix())
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, `AMQ\w{4}`, m.String())
	assert.True(t, m.Match([]byte("error AMQ6119 raised")))
	assert.False(t, m.Match([]byte(">BIP1234")))

	for _, bad := range []struct {
		prefix string
		width  int
	}{
		{"", 4},
		{">BIP", 0},
		{">BIP", -1},
		{"\x00BIP", 4},
		{">BIP\xff", 4},
	} {
		_, err := NewMarker(bad.prefix, bad.width)
		assert.ErrorIs(t, err, ErrInvalidMarker, "prefix %q width %d", bad.prefix, bad.width)
	}
}

func TestMarker_ZeroValue(t *testing.T) {
	var m Marker
	assert.Equal(t, -1, m.Index([]byte(">BIP1234")))
}
