package entities

import (
	"testing"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoBoxesLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	status := NewStatusBoxEntity(em)
	timer := NewTimerEntity(em)
	help := NewHelpBoxEntity(em, true)

	pos := func(id ecs.EntityID) *components.PositionComponent {
		p, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		require.True(t, ok)
		return p
	}

	assert.Equal(t, config.Margin, pos(status).X)
	assert.Equal(t, config.Margin+config.StatusBoxWidth+config.Space, pos(timer).X)
	assert.Equal(t, pos(status).Y, pos(timer).Y)
	assert.Equal(t, pos(status).Y, pos(help).Y)

	box, ok := ecs.GetComponent[*components.BoxComponent](em, help)
	require.True(t, ok)
	assert.Equal(t, float64(config.GameWindowWidth)-config.Margin, pos(help).X+box.Width)

	helpBox, ok := ecs.GetComponent[*components.HelpBoxComponent](em, help)
	require.True(t, ok)
	assert.True(t, helpBox.IsActive)
	assert.NotEmpty(t, helpBox.Lines)
}

func TestNewBanner(t *testing.T) {
	tests := []struct {
		name  string
		won   bool
		text  string
		color any
	}{
		{"胜利", true, WinBannerText, config.ColorWinBanner},
		{"失败", false, LoseBannerText, config.ColorLoseBanner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := NewBanner(em, tt.won)

			banner, ok := ecs.GetComponent[*components.BannerComponent](em, id)
			require.True(t, ok)
			assert.Equal(t, tt.text, banner.Text)
			assert.Equal(t, tt.color, banner.Color)
			assert.Equal(t, float64(config.BannerCenterX), banner.CenterX)
			assert.Equal(t, float64(config.BannerStartY), banner.Y)
			assert.NotNil(t, banner.Tween)
		})
	}
}

func TestNewTextInputCursorAtEnd(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewTextInput(em, 0, 0, 100, 30, "alice", 16)

	input, ok := ecs.GetComponent[*components.TextInputComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 5, input.CursorPosition)
	assert.True(t, input.IsFocused)
	assert.Equal(t, 16, input.MaxLength)
}
