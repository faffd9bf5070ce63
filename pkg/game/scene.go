package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (the start menu or a game in progress).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存设置
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 玩家按 q 退出
//   - 游戏窗口关闭
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
