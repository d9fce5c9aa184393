package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Cell response type (matches API)
type Cell struct {
	Revealed      bool  `json:"revealed"`
	Flagged       bool  `json:"flagged"`
	Mine          *bool `json:"mine,omitempty"`
	AdjacentMines int   `json:"adjacent_mines"`
}

// Game response type
type Game struct {
	ID             string    `json:"id"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	MineCount      int       `json:"mine_count"`
	Status         string    `json:"status"`
	Epoch          uint64    `json:"epoch"`
	RemainingMines int       `json:"remaining_mines"`
	ElapsedSeconds int64     `json:"elapsed_seconds"`
	Seed           *uint64   `json:"seed,omitempty"`
	Cells          [][]Cell  `json:"cells"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// GameSummary response type
type GameSummary struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	MineCount int       `json:"mine_count"`
	Status    string    `json:"status"`
	Epoch     uint64    `json:"epoch"`
	CreatedAt time.Time `json:"created_at"`
}

// GameList response type
type GameList struct {
	Games []GameSummary `json:"games"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Fprintf(o.w, "Game: %s (%dx%d, %d mines)\n", g.ID, g.Width, g.Height, g.MineCount)
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "Epoch: %d\n", g.Epoch)
	fmt.Fprintf(o.w, "Mines left: %d\n", g.RemainingMines)
	fmt.Fprintf(o.w, "Elapsed: %s\n", time.Duration(g.ElapsedSeconds)*time.Second)
	if g.Seed != nil {
		fmt.Fprintf(o.w, "Seed: %d\n", *g.Seed)
	}
	fmt.Fprintln(o.w)
	o.printBoard(g.Cells)
}

// cellSymbol renders one cell: # hidden, F flagged, * mine, . blank, or
// the adjacent mine count
func cellSymbol(c Cell) string {
	switch {
	case c.Flagged:
		return "F"
	case c.Mine != nil && *c.Mine:
		return "*"
	case !c.Revealed:
		return "#"
	case c.AdjacentMines == 0:
		return "."
	default:
		return fmt.Sprintf("%d", c.AdjacentMines)
	}
}

func (o *Output) printBoard(cells [][]Cell) {
	if len(cells) == 0 {
		return
	}
	width := len(cells[0])
	border := "    +" + strings.Repeat("---", width) + "+"

	// Column headers
	fmt.Fprint(o.w, "     ")
	for x := 0; x < width; x++ {
		fmt.Fprintf(o.w, "%3d", x)
	}
	fmt.Fprintln(o.w)

	fmt.Fprintln(o.w, border)
	for y, row := range cells {
		fmt.Fprintf(o.w, "%3d |", y)
		for _, c := range row {
			fmt.Fprintf(o.w, "%3s", cellSymbol(c))
		}
		fmt.Fprintln(o.w, "|")
	}
	fmt.Fprintln(o.w, border)
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	fmt.Fprintf(o.w, "Games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		fmt.Fprintf(o.w, "  - %s %dx%d, %d mines, %s (epoch %d)\n",
			g.ID, g.Width, g.Height, g.MineCount, g.Status, g.Epoch)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
