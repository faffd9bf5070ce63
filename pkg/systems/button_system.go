package systems

import (
	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ButtonSystem 处理按钮的悬停与点击
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{entityManager: em}
}

// Update 读取指针位置与左键点击
func (s *ButtonSystem) Update(deltaTime float64) {
	x, y := utils.GetPointerPosition()
	click, clicked := utils.JustClicked()
	if clicked {
		x, y = click.X, click.Y
	}
	s.HandlePointer(x, y, clicked && click.Button == ebiten.MouseButtonLeft)
}

// HandlePointer 更新按钮状态，clicked 为 true 时触发命中按钮的回调
// 返回是否有按钮被点击
func (s *ButtonSystem) HandlePointer(x, y int, clicked bool) bool {
	var pressed *components.ButtonComponent

	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !utils.PointInRect(x, y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		if clicked {
			button.State = components.UIClicked
			pressed = button
		} else {
			button.State = components.UIHovered
		}
	}

	// 回调可能切换场景，放在遍历结束后执行
	if pressed != nil && pressed.OnClick != nil {
		pressed.OnClick()
	}
	return pressed != nil
}
