package engine

import "github.com/qubicgame/qubic/internal/model"

// DetectWinner scans every line for four-in-a-row and returns the winner
// together with the cells of the completed line, or Nobody and a zero path.
//
// Lines are scanned in ascending id order and a later match overwrites an
// earlier one. Two different complete lines can only coexist on boards that
// never arose from alternating play; for those the last-scanned line wins.
func DetectWinner(b model.Board) (model.Player, model.WinPath) {
	t := TallyBoard(b)

	winner := model.Nobody
	var path model.WinPath
	for id := LineID(0); id < NumLines; id++ {
		if t.machine[id] == model.WinLength {
			winner = model.Machine
			path = model.WinPath(lineCells[id])
		}
		if t.human[id] == model.WinLength {
			winner = model.Human
			path = model.WinPath(lineCells[id])
		}
	}
	return winner, path
}
