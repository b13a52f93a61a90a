package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qubicgame/qubic/internal/model"
)

func TestEvaluateEmptyBoardIsZero(t *testing.T) {
	var b model.Board
	assert.Equal(t, 0, Evaluate(b, model.DefaultWeights()))
}

func TestEvaluateSingleMachinePiece(t *testing.T) {
	var b model.Board
	b.Set(0, model.Machine)

	// Cell 0 is on 7 lines, each now scoring weight[0][1] = -2
	assert.Equal(t, -14, Evaluate(b, model.DefaultWeights()))
}

func TestEvaluateSingleHumanPiece(t *testing.T) {
	var b model.Board
	b.Set(0, model.Human)

	// Mirror of the machine case: 7 lines at weight[1][0] = 2
	assert.Equal(t, 14, Evaluate(b, model.DefaultWeights()))
}

func TestEvaluateMixedLineScoresZero(t *testing.T) {
	// A line holding both players is dead and must not contribute
	w := model.DefaultWeights()
	assert.Equal(t, 0, w[1][1])
	assert.Equal(t, 0, w[2][1])
	assert.Equal(t, 0, w[1][2])
	assert.Equal(t, 0, w[3][1])
	assert.Equal(t, 0, w[1][3])
}

func TestEvaluateRespectsCustomWeights(t *testing.T) {
	var b model.Board
	b.Set(0, model.Machine)

	var w model.WeightMatrix
	w[0][1] = 10
	assert.Equal(t, 70, Evaluate(b, w))
}

func TestEvaluateDoesNotMutateBoard(t *testing.T) {
	var b model.Board
	b.Set(5, model.Human)
	before := b

	Evaluate(b, model.DefaultWeights())
	assert.Equal(t, before, b)
}

func TestTallyBoardCounts(t *testing.T) {
	var b model.Board
	b.Set(0, model.Machine)
	b.Set(1, model.Machine)
	b.Set(2, model.Human)

	tally := TallyBoard(b)

	// Line 0 is the row holding all three pieces
	human, machine := tally.Counts(0)
	assert.Equal(t, 1, human)
	assert.Equal(t, 2, machine)

	// Line 16 is the column through cell 0 only
	human, machine = tally.Counts(16)
	assert.Equal(t, 0, human)
	assert.Equal(t, 1, machine)
}

func TestDefaultWeightsMatchEngineDefaults(t *testing.T) {
	w := model.DefaultWeights()
	require.Equal(t, [5]int{0, -2, -4, -8, -16}, [5]int(w[0]))
	require.Equal(t, 2, w[1][0])
	require.Equal(t, 4, w[2][0])
	require.Equal(t, 8, w[3][0])
	require.Equal(t, 16, w[4][0])
	// The single contested entry with weight: two pieces each
	assert.Equal(t, 1, w[2][2])
}
