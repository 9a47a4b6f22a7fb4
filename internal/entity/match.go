package entity

// MatchSummary - result of a finished or interrupted match.
type MatchSummary struct {
	ID       string `json:"id"`
	Size     int    `json:"size"`
	Strategy string `json:"strategy"`
	Pieces   int    `json:"pieces"`
	Turns    int    `json:"turns"`
	Finished bool   `json:"finished"`
	Winner   int    `json:"winner"`
	HP       [2]int `json:"hp"`
}
