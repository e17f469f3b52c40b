package players

// Identity is a roster entry: the provider's canonical player id and display name.
type Identity struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

// Detail holds biographical info for a player (commonplayerinfo-aligned).
type Detail struct {
	PlayerID         int    `json:"playerId"`
	Name             string `json:"name"`
	Birthdate        string `json:"birthdate"` // YYYY-MM-DD
	Position         string `json:"position"`
	TeamAbbreviation string `json:"teamAbbreviation"`
	Height           string `json:"height"`
	Weight           string `json:"weight"`
}
