package systems

import (
	"testing"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoBoxSystemTimer(t *testing.T) {
	em, _ := newTestScene(t, game.Position{Row: 0, Col: 2}, game.Position{Row: 19, Col: 29})
	input := NewInputSystem(em, nil, nil, nil)
	sys := NewInfoBoxSystem(em)

	_, timer, ok := ecs.First[*components.TimerComponent](em)
	require.True(t, ok)

	// 第一次翻开之前计时器不走
	sys.Update(2)
	assert.Equal(t, 0, timer.Seconds)
	assert.False(t, timer.Running)

	x, y := cellCenter(0, 1)
	input.HandleClick(x, y, game.MouseLeft)
	sys.Update(1.0)
	sys.Update(1.5)
	assert.Equal(t, 2, timer.Seconds)
	assert.True(t, timer.Running)

	// 踩雷后停止
	x, y = cellCenter(0, 2)
	input.HandleClick(x, y, game.MouseLeft)
	sys.Update(5)
	assert.Equal(t, 2, timer.Seconds)
	assert.False(t, timer.Running)
}

func TestInfoBoxSystemStatusLines(t *testing.T) {
	em, session := newTestScene(t, game.Position{Row: 0, Col: 2})
	sys := NewInfoBoxSystem(em)
	session.Board().ToggleFlag(5, 5)

	sys.Update(0.016)

	_, status, ok := ecs.First[*components.StatusBoxComponent](em)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Player: alice",
		"Difficulty: Easy",
		"Mines: 1   Flags: 1",
		"Cells remaining: 600",
	}, status.Lines)
}

func TestInfoBoxSystemNoBoard(t *testing.T) {
	sys := NewInfoBoxSystem(ecs.NewEntityManager())
	assert.NotPanics(t, func() { sys.Update(1) })
}
