package request

// AddPlayerRequest is the request body for adding a player
type AddPlayerRequest struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

// RepositionRequest is the request body for changing a player's position
type RepositionRequest struct {
	Position string `json:"position"`
}

// SubstitutionRequest is the request body for swapping two players
type SubstitutionRequest struct {
	Incoming string `json:"incoming"`
	Outgoing string `json:"outgoing"`
}
