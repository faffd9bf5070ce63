package scenes

import (
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/entities"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/gonewx/minesweeper/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// GameScene 一局扫雷的场景
//
// 实体：棋盘、状态框、计时器、帮助框、排行榜面板，结束时追加胜负横幅。
type GameScene struct {
	sceneManager *game.SceneManager
	services     *Services
	session      *game.Session

	entityManager *ecs.EntityManager
	inputSystem   *systems.InputSystem
	infoBoxSystem *systems.InfoBoxSystem
	bannerSystem  *systems.BannerSystem
	renderSystem  *systems.RenderSystem
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - sm: 场景管理器，按 q 时请求退出
//   - services: 共享依赖
//   - player: 玩家名
//   - difficulty: 难度名，必须在难度配置中存在
func NewGameScene(sm *game.SceneManager, services *Services, player, difficulty string) (*GameScene, error) {
	session, err := services.NewSession(player, difficulty)
	if err != nil {
		return nil, err
	}
	d := session.Difficulty()

	showHelp := true
	var helpPref systems.HelpPreference
	if services.Settings != nil {
		showHelp = services.Settings.GetSettings().ShowHelp
		helpPref = services.Settings
	}
	var scores systems.ScoreSource
	if services.Scores != nil {
		scores = services.Scores
	}

	em := ecs.NewEntityManager()
	entities.NewBoardEntity(em, session)
	entities.NewStatusBoxEntity(em)
	entities.NewTimerEntity(em)
	entities.NewHelpBoxEntity(em, showHelp)
	entities.NewScoresPanelEntity(em, d.Label, services.Scores == nil || !services.Scores.IsPersistent())

	renderSystem, err := systems.NewRenderSystem(em)
	if err != nil {
		return nil, err
	}

	scene := &GameScene{
		sceneManager:  sm,
		services:      services,
		session:       session,
		entityManager: em,
		infoBoxSystem: systems.NewInfoBoxSystem(em),
		bannerSystem:  systems.NewBannerSystem(em),
		renderSystem:  renderSystem,
	}
	scene.inputSystem = systems.NewInputSystem(em, scores, helpPref, scene.quit)

	log.WithFields(logrus.Fields{
		"player":     player,
		"difficulty": d.Name,
		"mines":      d.Mines,
	}).Info("game started")
	return scene, nil
}

// Session 返回当前这局游戏
func (s *GameScene) Session() *game.Session {
	return s.session
}

func (s *GameScene) quit() {
	s.SaveOnExit()
	if s.sceneManager != nil {
		s.sceneManager.RequestQuit()
	}
}

// Update 处理输入、推进计时器和横幅动画
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.infoBoxSystem.Update(deltaTime)
	s.bannerSystem.Update(deltaTime)
}

// Draw 绘制场景
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorBackground)
	s.renderSystem.Draw(screen)
}

// SaveOnExit 记住玩家名、难度和帮助框偏好
func (s *GameScene) SaveOnExit() bool {
	settings := s.services.Settings
	if settings == nil {
		return true
	}
	settings.SetLastPlayer(s.session.Player())
	settings.SetLastDifficulty(s.session.Difficulty().Name)
	if err := settings.Save(); err != nil {
		log.WithError(err).Warn("failed to save settings")
		return false
	}
	return true
}
