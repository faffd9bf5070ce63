package systems

import (
	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/ecs"
)

// BannerSystem 推进横幅的滑入动画
type BannerSystem struct {
	entityManager *ecs.EntityManager
}

// NewBannerSystem 创建横幅系统
func NewBannerSystem(em *ecs.EntityManager) *BannerSystem {
	return &BannerSystem{entityManager: em}
}

// Update 每帧调用一次
func (s *BannerSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BannerComponent](s.entityManager) {
		banner, _ := ecs.GetComponent[*components.BannerComponent](s.entityManager, id)
		if banner.Tween == nil {
			continue
		}
		y, finished := banner.Tween.Update(float32(deltaTime))
		banner.Y = float64(y)
		if finished {
			banner.Tween = nil
		}
	}
}
