package domain

// BoardEntry is one ranked row of a leaderboard.
type BoardEntry struct {
	Name  string  `json:"name"`
	Rank  int     `json:"rank"`
	Value float64 `json:"value"`
}

// Board is a titled ranking, ordered by descending value with 1-based ranks.
type Board struct {
	Title string       `json:"title"`
	Data  []BoardEntry `json:"data"`
}

// Leaderboard groups the boards the way the frontend tabs consume them:
// overview boards (cumulative metrics) and max-lift boards.
type Leaderboard struct {
	Overview []Board `json:"overview"`
	Max      []Board `json:"max"`
}
