package model

// WeightMatrix converts a line's occupancy into a score contribution.
// Indexed [humanCount][machineCount], each in [0,4]. The total board score is
// the sum of contributions over all 76 lines; lower totals favor the machine.
type WeightMatrix [WinLength + 1][WinLength + 1]int

// DefaultWeights returns the stock evaluation weights. They are asymmetric on
// purpose: the evaluator scores from the machine's perspective, so human
// progress along a line is penalized exponentially while machine progress
// earns smaller rewards.
func DefaultWeights() WeightMatrix {
	return WeightMatrix{
		{0, -2, -4, -8, -16},
		{2, 0, 0, 0, 0},
		{4, 0, 1, 0, 0},
		{8, 0, 0, 0, 0},
		{16, 0, 0, 0, 0},
	}
}
