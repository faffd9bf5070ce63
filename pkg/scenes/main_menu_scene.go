package scenes

import (
	"strings"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/entities"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/gonewx/minesweeper/pkg/systems"
	"github.com/gonewx/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MainMenuScene 开始菜单：输入玩家名、选择难度
type MainMenuScene struct {
	sceneManager *game.SceneManager
	services     *Services

	entityManager   *ecs.EntityManager
	textInputSystem *systems.TextInputSystem
	buttonSystem    *systems.ButtonSystem
	renderSystem    *systems.RenderSystem

	nameInput         ecs.EntityID
	difficultyButtons map[string]ecs.EntityID
	selected          string
	message           string // 提示信息（如未输入名字）

	titleFont *text.GoTextFace
	labelFont *text.GoTextFace
}

// NewMainMenuScene 创建开始菜单，用上次的玩家名和难度预填
func NewMainMenuScene(sm *game.SceneManager, services *Services) (*MainMenuScene, error) {
	em := ecs.NewEntityManager()
	renderSystem, err := systems.NewRenderSystem(em)
	if err != nil {
		return nil, err
	}
	titleFont, err := utils.LoadFont(config.TitleFontSize)
	if err != nil {
		return nil, err
	}
	labelFont, err := utils.LoadFont(config.BoxFontSize)
	if err != nil {
		return nil, err
	}

	m := &MainMenuScene{
		sceneManager:      sm,
		services:          services,
		entityManager:     em,
		textInputSystem:   systems.NewTextInputSystem(em),
		buttonSystem:      systems.NewButtonSystem(em),
		renderSystem:      renderSystem,
		difficultyButtons: make(map[string]ecs.EntityID),
		titleFont:         titleFont,
		labelFont:         labelFont,
	}

	lastPlayer, lastDifficulty := "", ""
	if services.Settings != nil {
		settings := services.Settings.GetSettings()
		lastPlayer, lastDifficulty = settings.LastPlayer, settings.LastDifficulty
	}

	m.nameInput = entities.NewTextInput(em, config.MenuInputX, config.MenuInputY,
		config.MenuInputWidth, config.MenuInputHeight, lastPlayer, config.MenuNameMaxLength)

	m.createDifficultyButtons()
	if _, err := services.Difficulties.Get(lastDifficulty); err != nil {
		lastDifficulty = services.Difficulties.Names()[0]
	}
	m.selectDifficulty(lastDifficulty)

	startX := (float64(config.GameWindowWidth) - config.MenuButtonWidth) / 2
	startY := config.MenuButtonY + config.MenuButtonHeight + 2*config.MenuButtonSpacing
	entities.NewMenuButton(em, startX, startY, config.MenuButtonWidth, config.MenuButtonHeight, "Start", func() {
		m.start()
	})

	return m, nil
}

// createDifficultyButtons 每个难度一个按钮，水平居中排列
func (m *MainMenuScene) createDifficultyButtons() {
	names := m.services.Difficulties.Names()
	n := float64(len(names))
	total := n*config.MenuButtonWidth + (n-1)*config.MenuButtonSpacing
	x := (float64(config.GameWindowWidth) - total) / 2

	for _, name := range names {
		d, _ := m.services.Difficulties.Get(name)
		id := entities.NewMenuButton(m.entityManager, x, config.MenuButtonY,
			config.MenuButtonWidth, config.MenuButtonHeight, d.Label, func() {
				m.selectDifficulty(name)
			})
		m.difficultyButtons[name] = id
		x += config.MenuButtonWidth + config.MenuButtonSpacing
	}
}

// selectDifficulty 高亮选中的难度按钮
func (m *MainMenuScene) selectDifficulty(name string) {
	m.selected = name
	for n, id := range m.difficultyButtons {
		if button, ok := ecs.GetComponent[*components.ButtonComponent](m.entityManager, id); ok {
			button.Selected = n == name
		}
	}
}

// playerName 返回输入框中去掉首尾空白的名字
func (m *MainMenuScene) playerName() string {
	input, ok := ecs.GetComponent[*components.TextInputComponent](m.entityManager, m.nameInput)
	if !ok {
		return ""
	}
	return strings.TrimSpace(input.Text)
}

// start 校验输入并切换到游戏场景
func (m *MainMenuScene) start() bool {
	name := m.playerName()
	if name == "" {
		m.message = "Please enter your name"
		return false
	}

	if settings := m.services.Settings; settings != nil {
		settings.SetLastPlayer(name)
		settings.SetLastDifficulty(m.selected)
		if err := settings.Save(); err != nil {
			log.WithError(err).Warn("failed to save settings")
		}
	}

	if !m.sceneManager.StartGame(name, m.selected) {
		m.message = "Could not start the game"
		return false
	}
	return true
}

// Update 处理输入框、按钮和回车键
func (m *MainMenuScene) Update(deltaTime float64) {
	m.textInputSystem.Update(deltaTime)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		m.start()
		return
	}
	m.buttonSystem.Update(deltaTime)
}

// Draw 绘制菜单
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)

	centerX := float64(config.GameWindowWidth) / 2
	utils.DrawCenteredText(screen, "Minesweeper", m.titleFont, centerX, config.MenuTitleY, config.ColorTextLight)
	utils.DrawText(screen, "Player name", m.labelFont, config.MenuInputX, config.MenuInputY-20, config.ColorTextLight)
	utils.DrawText(screen, "Difficulty", m.labelFont, config.MenuInputX, config.MenuButtonY-20, config.ColorTextLight)

	m.renderSystem.Draw(screen)

	if m.message != "" {
		utils.DrawCenteredText(screen, m.message, m.labelFont, centerX,
			config.MenuButtonY+2*config.MenuButtonHeight+4*config.MenuButtonSpacing, config.ColorLoseBanner)
	}
}
