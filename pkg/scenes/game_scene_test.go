package scenes

import (
	"errors"
	"testing"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDifficultiesYAML = `
difficulties:
  - name: easy
    label: Easy
    mines: 60
  - name: hard
    label: Hard
    mines: 120
`

func newTestServices(t *testing.T) *Services {
	t.Helper()
	cfg, err := config.ParseDifficulties([]byte(testDifficultiesYAML))
	require.NoError(t, err)
	return &Services{
		Difficulties: cfg,
		Scores:       game.NewScoreManager(nil),
		Settings:     game.NewSettingsManager(nil),
	}
}

// mineLayout 返回棋盘上所有地雷的位置
func mineLayout(b *game.Board) []game.Position {
	var out []game.Position
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if cell, _ := b.Cell(r, c); cell.IsMine {
				out = append(out, game.Position{Row: r, Col: c})
			}
		}
	}
	return out
}

func TestNewGameSceneUnknownDifficulty(t *testing.T) {
	_, err := NewGameScene(game.NewSceneManager(), newTestServices(t), "alice", "nightmare")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnknownDifficulty))
}

func TestNewGameSceneUsesPreset(t *testing.T) {
	scene, err := NewGameScene(game.NewSceneManager(), newTestServices(t), "alice", "hard")
	require.NoError(t, err)

	session := scene.Session()
	assert.Equal(t, "alice", session.Player())
	assert.Equal(t, "hard", session.Difficulty().Name)
	assert.Equal(t, 120, session.Board().NumMinesDeployed())
}

func TestNewGameSceneMinesOverrideAndSeed(t *testing.T) {
	services := newTestServices(t)
	seed := uint64(42)
	services.Seed = &seed
	services.MinesOverride = 10

	a, err := NewGameScene(game.NewSceneManager(), services, "alice", "easy")
	require.NoError(t, err)
	b, err := NewGameScene(game.NewSceneManager(), services, "bob", "easy")
	require.NoError(t, err)

	assert.Equal(t, 10, a.Session().Board().NumMinesDeployed())
	assert.Equal(t, mineLayout(a.Session().Board()), mineLayout(b.Session().Board()))
}

func TestGameSceneUpdateTicksTimer(t *testing.T) {
	scene, err := NewGameScene(game.NewSceneManager(), newTestServices(t), "alice", "easy")
	require.NoError(t, err)

	scene.Update(1)
	assert.Zero(t, scene.Session().Seconds(), "timer waits for the first reveal")
	assert.False(t, scene.Session().TimerRunning())
}

func TestGameSceneSaveOnExit(t *testing.T) {
	services := newTestServices(t)
	scene, err := NewGameScene(game.NewSceneManager(), services, "alice", "hard")
	require.NoError(t, err)

	assert.True(t, scene.SaveOnExit())
	settings := services.Settings.GetSettings()
	assert.Equal(t, "alice", settings.LastPlayer)
	assert.Equal(t, "hard", settings.LastDifficulty)

	services.Settings = nil
	assert.True(t, scene.SaveOnExit())
}

func TestGameSceneQuitRequestsExit(t *testing.T) {
	sm := game.NewSceneManager()
	scene, err := NewGameScene(sm, newTestServices(t), "alice", "easy")
	require.NoError(t, err)

	scene.inputSystem.HandleKey('q')
	assert.True(t, sm.QuitRequested())
}

func TestGameSceneMarksInMemoryScoresUnsaved(t *testing.T) {
	scene, err := NewGameScene(game.NewSceneManager(), newTestServices(t), "alice", "easy")
	require.NoError(t, err)

	_, panel, ok := ecs.First[*components.ScoresPanelComponent](scene.entityManager)
	require.True(t, ok)
	assert.True(t, panel.Unsaved)
	assert.Equal(t, "Easy", panel.Difficulty)
}
