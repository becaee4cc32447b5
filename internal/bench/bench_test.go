package bench

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatasetSkipsBlankLines(t *testing.T) {
	input := "2252576253462244111563365343671351441 -1\n\n427566236745127177115664464254 2\n"
	cases, err := ParseDataset(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, -1, cases[0].Expected)
	assert.Equal(t, 2, cases[1].Expected)
}

func TestParseDatasetRejectsMalformedLine(t *testing.T) {
	_, err := ParseDataset(strings.NewReader("44 notanumber\n"))
	require.Error(t, err)
	assert.IsType(t, MalformedLine{}, err)
}

func TestRunFileMatchesKnownScores(t *testing.T) {
	r := &Runner{}
	fr, err := r.RunFile("testdata/bench/endgame_L1.txt")
	require.NoError(t, err)
	require.Len(t, fr.Results, 2)

	for _, res := range fr.Results {
		assert.NoError(t, res.ParseErr)
		assert.True(t, res.Passed, "moves=%s expected=%d got=%d", res.Case.Moves, res.Case.Expected, res.Got)
	}
}

func TestRunDirCoversEveryFileConcurrently(t *testing.T) {
	r := &Runner{}
	results, err := r.RunDir(context.Background(), "testdata/bench")
	require.NoError(t, err)
	require.Len(t, results, 2)

	total := 0
	for _, fr := range results {
		total += len(fr.Results)
		for _, res := range fr.Results {
			assert.True(t, res.Passed)
		}
	}
	assert.Equal(t, 4, total)
}
