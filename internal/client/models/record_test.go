package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	require.Equal(t, Profile{Name: "", Age: "", Level: LevelBeginner, Genre: "General"}, DefaultProfile())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("intermediate")
	require.NoError(t, err)
	require.Equal(t, LevelIntermediate, l)

	l, err = ParseLevel(" HARD ")
	require.NoError(t, err)
	require.Equal(t, LevelHard, l)

	_, err = ParseLevel("Expert")
	require.Error(t, err)
}

func TestKeys(t *testing.T) {
	require.Equal(t, "wren_a@x.com", ProgressKey("a@x.com"))
	require.Equal(t, "tim_thought_2024-01-01", QuoteKey("2024-01-01"))
}

func TestQuotes(t *testing.T) {
	require.Len(t, Quotes, 6)
	require.True(t, IsQuote("Consistency beats perfection."))
	require.False(t, IsQuote("Practice makes perfect."))
}
