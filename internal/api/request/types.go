package request

// CreateGameRequest is the request body for creating a game. Omitted
// fields use the server's defaults.
type CreateGameRequest struct {
	Width     int     `json:"width,omitempty"`
	Height    int     `json:"height,omitempty"`
	MineCount *int    `json:"mine_count,omitempty"`
	Seed      *uint64 `json:"seed,omitempty"`
}

// CellRequest is the request body for reveal, chord and flag
type CellRequest struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}
