package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVowelExactlyAEIOU(t *testing.T) {
	for _, r := range alphabet {
		want := r == 'A' || r == 'E' || r == 'I' || r == 'O' || r == 'U'
		assert.Equal(t, want, IsVowel(r), "letter %c", r)
		assert.Equal(t, !want, IsConsonant(r), "letter %c", r)
	}
	assert.False(t, IsVowel(' '))
	assert.False(t, IsConsonant('_'))
}

func TestIsAlphabetic(t *testing.T) {
	assert.True(t, IsAlphabetic('a'))
	assert.True(t, IsAlphabetic('Z'))
	assert.False(t, IsAlphabetic('1'))
	assert.False(t, IsAlphabetic(' '))
	assert.False(t, IsAlphabetic('é'))
}

func TestParseLetter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr error
	}{
		{"t", 'T', nil},
		{"Q\n", 'Q', nil},
		{"e\r\n", 'E', nil},
		{"", 0, ErrNotOneLetter},
		{"ab", 0, ErrNotOneLetter},
		{" a", 0, ErrNotOneLetter},
		{"7", 0, ErrNotALetter},
		{" ", 0, ErrNotALetter},
	}
	for _, tt := range tests {
		got, err := ParseLetter(tt.in)
		if tt.wantErr != nil {
			require.ErrorIs(t, err, tt.wantErr, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
