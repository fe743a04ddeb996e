package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "javascript", p.Secret())
	want := []string{
		"Es un lenguaje de programación.",
		"Es muy utilizado en desarrollo web.",
		"Su nombre incluye 'script'.",
		"Es el lenguaje que estás usando ahora.",
	}
	require.Equal(t, len(want), p.ClueCount())
	for i, w := range want {
		got, ok := p.Clue(i)
		assert.True(t, ok)
		assert.Equal(t, w, got, "clue %d", i)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		clues   int
	}{
		{
			name:  "valid",
			doc:   "secret: gopher\nclues:\n  - first\n  - second\n",
			clues: 2,
		},
		{
			name:  "no clues",
			doc:   "secret: gopher\n",
			clues: 0,
		},
		{
			name:    "missing secret",
			doc:     "clues:\n  - first\n",
			wantErr: ErrEmptySecret,
		},
		{
			name:    "uppercase secret",
			doc:     "secret: Gopher\n",
			wantErr: ErrSecretNotLower,
		},
		{
			name:    "blank clue",
			doc:     "secret: gopher\nclues:\n  - first\n  - \"  \"\n",
			wantErr: ErrBlankClue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse([]byte(tt.doc))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "gopher", p.Secret())
			assert.Equal(t, tt.clues, p.ClueCount())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("secret: [unterminated"))
	assert.Error(t, err)
}

func TestNew_CopiesClues(t *testing.T) {
	clues := []string{"one", "two"}
	p, err := New("word", clues)
	require.NoError(t, err)

	clues[0] = "changed"
	c, ok := p.Clue(0)
	assert.True(t, ok)
	assert.Equal(t, "one", c)
}

func TestClue_OutOfRange(t *testing.T) {
	p, err := New("word", []string{"only"})
	require.NoError(t, err)

	_, ok := p.Clue(-1)
	assert.False(t, ok)
	_, ok = p.Clue(1)
	assert.False(t, ok)
}
