package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	require.NotNil(t, sm)
	assert.Nil(t, sm.GetCurrentScene())
	assert.False(t, sm.QuitRequested())
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	assert.Same(t, mockScene, sm.GetCurrentScene())

	sm.Update(0.016)
	assert.True(t, mockScene.updateCalled)
	assert.InDelta(t, 0.016, mockScene.deltaTime, 1e-9)

	sm.Draw(nil)
	assert.True(t, mockScene.drawCalled)
}

// TestSceneManagerNoScene 没有活动场景时 Update/Draw 不应 panic
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	assert.NotPanics(t, func() {
		sm.Update(0.016)
		sm.Draw(nil)
	})
}

func TestSceneManagerStartGame(t *testing.T) {
	sm := NewSceneManager()
	assert.False(t, sm.StartGame("alice", "easy"), "no factory set")

	var gotPlayer, gotDifficulty string
	created := &MockScene{}
	sm.SetSceneFactory(func(player, difficulty string) Scene {
		gotPlayer, gotDifficulty = player, difficulty
		if difficulty == "unknown" {
			return nil
		}
		return created
	})

	menu := &MockScene{}
	sm.SwitchTo(menu)

	assert.False(t, sm.StartGame("alice", "unknown"))
	assert.Same(t, menu, sm.GetCurrentScene())

	assert.True(t, sm.StartGame("alice", "hard"))
	assert.Equal(t, "alice", gotPlayer)
	assert.Equal(t, "hard", gotDifficulty)
	assert.Same(t, created, sm.GetCurrentScene())
}

func TestSceneManagerRequestQuit(t *testing.T) {
	sm := NewSceneManager()
	sm.RequestQuit()
	assert.True(t, sm.QuitRequested())
}
