package systems

import (
	"testing"
	"time"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/stretchr/testify/assert"
)

func TestScoreLines(t *testing.T) {
	assert.Equal(t, []string{"No scores yet"}, ScoreLines(nil))

	date := time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)
	lines := ScoreLines([]game.ScoreEntry{
		{Name: "bob", Seconds: 17, Date: date},
		{Name: "alice", Seconds: 42, Date: date},
	})
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], " 1. bob")
	assert.Contains(t, lines[0], "17s")
	assert.Contains(t, lines[1], " 2. alice")
	assert.Contains(t, lines[1], "2024-05-01")
}

func TestScoresTitle(t *testing.T) {
	panel := &components.ScoresPanelComponent{Difficulty: "Hard"}
	assert.Equal(t, "Top scores - Hard", ScoresTitle(panel))

	panel.Unsaved = true
	assert.Equal(t, "Top scores - Hard (unsaved)", ScoresTitle(panel))
}
