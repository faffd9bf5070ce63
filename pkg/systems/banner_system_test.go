package systems

import (
	"testing"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerSystemSlidesIn(t *testing.T) {
	em := ecs.NewEntityManager()
	id := entities.NewBanner(em, true)
	sys := NewBannerSystem(em)

	banner, ok := ecs.GetComponent[*components.BannerComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, float64(config.BannerStartY), banner.Y)

	sys.Update(config.BannerSlideDuration / 4)
	assert.Greater(t, banner.Y, float64(config.BannerStartY))
	assert.NotNil(t, banner.Tween)

	for i := 0; i < 10; i++ {
		sys.Update(config.BannerSlideDuration / 4)
	}
	assert.Nil(t, banner.Tween)
	assert.InDelta(t, config.BannerTargetY, banner.Y, 1e-3)

	// 动画结束后位置保持不变
	sys.Update(1)
	assert.InDelta(t, config.BannerTargetY, banner.Y, 1e-3)
}
