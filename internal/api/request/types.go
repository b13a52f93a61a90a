// Package request defines the JSON request bodies accepted by the API
package request

// CreateGame is the body for POST /games
type CreateGame struct {
	Randomize bool `json:"randomize"`
}

// HumanMove is the body for POST /games/{id}/moves
type HumanMove struct {
	Cell int `json:"cell"`
}

// SetWeights is the body for PUT /games/{id}/weights
type SetWeights struct {
	Weights [5][5]int `json:"weights"`
}

// SetRandomize is the body for PUT /games/{id}/randomize
type SetRandomize struct {
	Randomize bool `json:"randomize"`
}

// SetBoard is the body for PUT /games/{id}/board
type SetBoard struct {
	Board string `json:"board"`
}

// Evaluate is the body for POST /evaluate
type Evaluate struct {
	Board string `json:"board"`
}
