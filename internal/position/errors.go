package position

import "fmt"

// InvalidBoardStringLength reports a FromBoardString argument whose cell
// count (after stripping anything outside ['.', 'o', 'x']) doesn't match
// BoardSize.
type InvalidBoardStringLength struct {
	Actual   int
	Expected int
}

// InvalidCharacter reports a FromMoves move string containing something
// other than an ASCII digit.
type InvalidCharacter struct {
	Character rune
	Index     int
}

// InvalidColumn reports a FromMoves digit outside the board's column
// range (1..W).
type InvalidColumn struct {
	Column int
	Index  int
}

// InvalidFullColumnMove reports a FromMoves move into a column whose top
// cell is already occupied.
type InvalidFullColumnMove struct {
	Column int
	Index  int
}

// InvalidWinningMove reports a FromMoves move that would complete an
// alignment; a legal move string never passes through a winning
// position, since the game ends there.
type InvalidWinningMove struct {
	Column int
	Index  int
}

func (e InvalidBoardStringLength) Error() string {
	return fmt.Sprintf("position: invalid board string length: got %d cells, want %d", e.Actual, e.Expected)
}

func (e InvalidCharacter) Error() string {
	return fmt.Sprintf("position: invalid character %q at move index %d", e.Character, e.Index)
}

func (e InvalidColumn) Error() string {
	return fmt.Sprintf("position: column %d out of range at move index %d", e.Column, e.Index)
}

func (e InvalidFullColumnMove) Error() string {
	return fmt.Sprintf("position: column %d is full at move index %d", e.Column, e.Index)
}

func (e InvalidWinningMove) Error() string {
	return fmt.Sprintf("position: column %d at move index %d would complete an alignment", e.Column, e.Index)
}
