package systems

import (
	"fmt"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/ecs"
)

// InfoBoxSystem 推进计时器并刷新计时器、状态框的显示内容
type InfoBoxSystem struct {
	entityManager *ecs.EntityManager
}

// NewInfoBoxSystem 创建信息框系统
func NewInfoBoxSystem(em *ecs.EntityManager) *InfoBoxSystem {
	return &InfoBoxSystem{entityManager: em}
}

// Update 每帧调用一次
func (s *InfoBoxSystem) Update(deltaTime float64) {
	_, board, ok := ecs.First[*components.BoardComponent](s.entityManager)
	if !ok {
		return
	}
	session := board.Session
	session.Tick(deltaTime)

	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		timer.Seconds = session.Seconds()
		timer.Running = session.TimerRunning()
	}

	b := session.Board()
	lines := []string{
		fmt.Sprintf("Player: %s", session.Player()),
		fmt.Sprintf("Difficulty: %s", session.Difficulty().Label),
		fmt.Sprintf("Mines: %d   Flags: %d", b.NumMinesDeployed(), b.NumFlags()),
		fmt.Sprintf("Cells remaining: %d", b.NumCellsRemaining()),
	}
	for _, id := range ecs.GetEntitiesWith1[*components.StatusBoxComponent](s.entityManager) {
		status, _ := ecs.GetComponent[*components.StatusBoxComponent](s.entityManager, id)
		status.Lines = lines
	}
}
