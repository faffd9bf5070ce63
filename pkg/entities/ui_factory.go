package entities

import (
	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// 胜负横幅文字
const (
	WinBannerText  = "You win! Congrats!"
	LoseBannerText = "You have lost, try again!"
)

// HelpLines 帮助框内容
var HelpLines = []string{
	"Left click: reveal a cell",
	"Right click: plant or remove a flag",
	"R: restart   S: top scores",
	"H: hide help   Q: quit",
}

// NewBoardEntity 创建棋盘实体
func NewBoardEntity(em *ecs.EntityManager, session *game.Session) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.GridStartX, Y: config.GridStartY})
	ecs.AddComponent(em, entity, &components.BoxComponent{Width: config.GridWidth, Height: config.GridHeight})
	ecs.AddComponent(em, entity, &components.BoardComponent{Session: session})
	return entity
}

// NewStatusBoxEntity 创建左下角的状态框
func NewStatusBoxEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.StatusBoxX, Y: config.StatusBoxY})
	ecs.AddComponent(em, entity, &components.BoxComponent{Width: config.StatusBoxWidth, Height: config.StatusBoxHeight})
	ecs.AddComponent(em, entity, &components.StatusBoxComponent{})
	return entity
}

// NewTimerEntity 创建状态框右侧的计时器
func NewTimerEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.TimerX, Y: config.TimerY})
	ecs.AddComponent(em, entity, &components.BoxComponent{Width: config.TimerWidth, Height: config.TimerHeight})
	ecs.AddComponent(em, entity, &components.TimerComponent{})
	return entity
}

// NewHelpBoxEntity 创建右下角的帮助框
func NewHelpBoxEntity(em *ecs.EntityManager, visible bool) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.HelpBoxX, Y: config.HelpBoxY})
	ecs.AddComponent(em, entity, &components.BoxComponent{Width: config.HelpBoxWidth, Height: config.HelpBoxHeight})
	ecs.AddComponent(em, entity, &components.HelpBoxComponent{Lines: HelpLines, IsActive: visible})
	return entity
}

// NewScoresPanelEntity 创建覆盖在棋盘上的排行榜面板，初始隐藏
func NewScoresPanelEntity(em *ecs.EntityManager, difficultyLabel string, unsaved bool) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: config.GridStartX + 150, Y: config.GridStartY + 40})
	ecs.AddComponent(em, entity, &components.BoxComponent{Width: 300, Height: 320})
	ecs.AddComponent(em, entity, &components.ScoresPanelComponent{Difficulty: difficultyLabel, Unsaved: unsaved})
	return entity
}

// NewBanner 创建胜负横幅，从窗口上方滑到网格上方的留白中央
func NewBanner(em *ecs.EntityManager, won bool) ecs.EntityID {
	banner := &components.BannerComponent{
		Text:    LoseBannerText,
		Color:   config.ColorLoseBanner,
		CenterX: config.BannerCenterX,
		Y:       config.BannerStartY,
		Tween:   gween.New(config.BannerStartY, config.BannerTargetY, config.BannerSlideDuration, ease.OutBounce),
	}
	if won {
		banner.Text = WinBannerText
		banner.Color = config.ColorWinBanner
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, banner)
	return entity
}

// NewMenuButton 创建菜单按钮实体
//
// 参数：
//   - x, y: 按钮左上角（屏幕坐标）
//   - text: 按钮文字
//   - onClick: 点击回调函数
func NewMenuButton(em *ecs.EntityManager, x, y, width, height float64, text string, onClick func()) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:    text,
		Width:   width,
		Height:  height,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})
	return entity
}

// NewTextInput 创建获得焦点的文本输入框
func NewTextInput(em *ecs.EntityManager, x, y, width, height float64, initial string, maxLength int) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.TextInputComponent{
		Text:           initial,
		Width:          width,
		Height:         height,
		CursorVisible:  true,
		CursorPosition: len([]rune(initial)),
		MaxLength:      maxLength,
		Placeholder:    "Your name",
		IsFocused:      true,
		PaddingLeft:    8,
	})
	return entity
}
