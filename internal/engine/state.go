package engine

import "fmt"

// safeZoneSize is the largest possible mine-free area around a first click
const safeZoneSize = 9

// Status is the outcome of a game so far
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// IsTerminal returns true once the game has been won or lost
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// CellView is what a caller may know about one cell
type CellView struct {
	Coordinate Coordinate
	Revealed   bool
	Flagged    bool
	// Mine is only disclosed when the cell is revealed or the game has ended
	Mine bool
	// AdjacentMines is only set for revealed cells that are not mines
	AdjacentMines int
}

// State holds one game: the mine layout and the revealed and flagged cells.
// It is not safe for concurrent use.
type State struct {
	grid      Grid
	mineCount int
	placer    MinePlacer

	mines    CoordinateSet
	revealed CoordinateSet
	flags    CoordinateSet

	minesPlaced bool
	epoch       uint64
}

// ValidateConfiguration checks that mineCount mines fit a width x height
// grid while leaving room for the largest possible safe zone
func ValidateConfiguration(width, height, mineCount int) error {
	grid, err := NewGrid(width, height)
	if err != nil {
		return err
	}
	if mineCount < 0 {
		return fmt.Errorf("%w: mine count must not be negative, got %d", ErrInvalidConfiguration, mineCount)
	}
	if mineCount > grid.CellCount()-safeZoneSize {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d grid with a %d-cell safe zone",
			ErrInvalidConfiguration, mineCount, width, height, safeZoneSize)
	}
	return nil
}

// NewState creates a game with no mines placed yet. Mines are laid on the
// first primary action so that it can never hit one.
func NewState(width, height, mineCount int, placer MinePlacer) (*State, error) {
	if err := ValidateConfiguration(width, height, mineCount); err != nil {
		return nil, err
	}

	return &State{
		grid:      Grid{Width: width, Height: height},
		mineCount: mineCount,
		placer:    placer,
		mines:     NewCoordinateSet(),
		revealed:  NewCoordinateSet(),
		flags:     NewCoordinateSet(),
	}, nil
}

// Grid returns the board dimensions
func (s *State) Grid() Grid {
	return s.grid
}

// MineCount returns the configured number of mines
func (s *State) MineCount() int {
	return s.mineCount
}

// Epoch returns the reset counter
func (s *State) Epoch() uint64 {
	return s.epoch
}

// MinesPlaced returns true once the first primary action has laid the mines
func (s *State) MinesPlaced() bool {
	return s.minesPlaced
}

// RevealedCount returns the number of revealed cells
func (s *State) RevealedCount() int {
	return s.revealed.Size()
}

// FlagCount returns the number of flagged cells
func (s *State) FlagCount() int {
	return s.flags.Size()
}

// PrimaryAction reveals c, laying the mines first if this is the opening move
func (s *State) PrimaryAction(c Coordinate) error {
	if err := s.checkBounds(c); err != nil {
		return err
	}
	if s.Status().IsTerminal() {
		return nil
	}

	if !s.MinesPlaced() {
		mines, err := s.placer.Generate(s.grid, s.mineCount, c)
		if err != nil {
			return err
		}
		s.mines = mines
		s.minesPlaced = true
	} else if s.revealed.Has(c) {
		return nil
	}

	s.revealed = Reveal(s.grid, s.flags, s.mines, s.revealed, c)
	return nil
}

// SecondaryAction chords on c. Nothing happens before the mines exist.
func (s *State) SecondaryAction(c Coordinate) error {
	if err := s.checkBounds(c); err != nil {
		return err
	}
	if s.Status().IsTerminal() || !s.MinesPlaced() {
		return nil
	}

	s.revealed = Chord(s.grid, s.flags, s.mines, s.revealed, c)
	return nil
}

// FlagToggle flags an unrevealed cell, or unflags it if already flagged
func (s *State) FlagToggle(c Coordinate) error {
	if err := s.checkBounds(c); err != nil {
		return err
	}
	if s.Status().IsTerminal() || s.revealed.Has(c) {
		return nil
	}

	if s.flags.Has(c) {
		s.flags.Remove(c)
	} else {
		s.flags.Put(c)
	}
	return nil
}

// Reset starts a fresh game on the same board and advances the epoch
func (s *State) Reset() {
	s.mines = NewCoordinateSet()
	s.revealed = NewCoordinateSet()
	s.flags = NewCoordinateSet()
	s.minesPlaced = false
	s.epoch++
}

// Status derives the outcome from the current sets. Lost wins over Won.
func (s *State) Status() Status {
	if s.mines.Intersects(s.revealed) {
		return StatusLost
	}
	if s.revealed.Size() == s.grid.CellCount()-s.mineCount {
		return StatusWon
	}
	return StatusOngoing
}

// RemainingMineCount returns mines minus flags; negative when over-flagged
func (s *State) RemainingMineCount() int {
	return s.mineCount - s.flags.Size()
}

// CellView reports what may be shown for c
func (s *State) CellView(c Coordinate) (CellView, error) {
	if err := s.checkBounds(c); err != nil {
		return CellView{}, err
	}
	return s.cellView(c, s.Status().IsTerminal()), nil
}

// CellViews returns a view of every cell in row-major order
func (s *State) CellViews() []CellView {
	ended := s.Status().IsTerminal()
	coords := s.grid.Coordinates()
	views := make([]CellView, len(coords))
	for i, c := range coords {
		views[i] = s.cellView(c, ended)
	}
	return views
}

func (s *State) cellView(c Coordinate, ended bool) CellView {
	view := CellView{
		Coordinate: c,
		Revealed:   s.revealed.Has(c),
		Flagged:    s.flags.Has(c),
	}
	if view.Revealed || ended {
		view.Mine = s.mines.Has(c)
	}
	if view.Revealed && !view.Mine {
		view.AdjacentMines = s.grid.countAdjacent(c, s.mines)
	}
	return view
}

func (s *State) checkBounds(c Coordinate) error {
	if !s.grid.Contains(c) {
		return fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, c, s.grid.Width, s.grid.Height)
	}
	return nil
}
