package model

type ResolveThreadRequest struct {
	Participants []string `json:"participants" binding:"required"`
}

type ResolveThreadResponse struct {
	ThreadKey string `json:"thread_key"`
}

type StartGameRequest struct {
	StartingWord string `json:"starting_word" binding:"required"`
}

type SubmitScoreRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Score string `json:"score" binding:"required"`
}

// GameResponse renders a day record; Started is false both when no game was
// ever started and when the stored record turned out malformed.
type GameResponse struct {
	Started bool        `json:"started"`
	Game    *ThreadGame `json:"game,omitempty"`
}

type PlayerStats struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	TotalGames   int            `json:"total_games"`
	Distribution map[string]int `json:"distribution"`
}

// NewPlayerStats returns stats with every score bucket present and zeroed.
func NewPlayerStats(id string) *PlayerStats {
	d := make(map[string]int, len(ScoreSymbols)+1)
	for _, s := range ScoreSymbols {
		d[s] = 0
	}
	d[ScoreOther] = 0
	return &PlayerStats{ID: id, Distribution: d}
}

type ProfileRequest struct {
	Name string `json:"name" binding:"required"`
}
