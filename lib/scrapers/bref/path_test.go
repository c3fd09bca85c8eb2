package bref

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Every ref FindASG produces must yield a path ExtractGame accepts,
// including the second games of the 1959-1962 doubleheader summers.
func TestAllStarGamePathsValidate(t *testing.T) {
	s := NewScraper(ScraperOptions{
		Now: func() time.Time {
			return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		},
	})

	refs := s.FindASG([]string{"1961"})
	require.Len(t, refs, 2)
	require.Equal(t, "/allstar/1961-allstar-game-1.shtml", gamePath(refs[0]))
	require.Equal(t, "/allstar/1961-allstar-game-2.shtml", gamePath(refs[1]))
	for _, ref := range refs {
		require.True(t, allstarPathRegex.MatchString(gamePath(ref)), gamePath(ref))
	}

	refs = s.FindASG([]string{"1999"})
	require.Len(t, refs, 1)
	require.Equal(t, "/allstar/1999-allstar-game.shtml", gamePath(refs[0]))
	require.True(t, allstarPathRegex.MatchString(gamePath(refs[0])))

	require.False(t, allstarPathRegex.MatchString("/allstar/1961-allstar-game-23.shtml"))
	require.False(t, allstarPathRegex.MatchString("/allstar/1961-allstar-game-.shtml"))
}
