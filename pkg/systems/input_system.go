package systems

import (
	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/entities"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/gonewx/minesweeper/pkg/logging"
	"github.com/gonewx/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

var log = logging.For("systems")

// ScoreSource 提供排行榜数据
type ScoreSource interface {
	TopScores(difficulty string) []game.ScoreEntry
}

// HelpPreference 记录帮助框显隐偏好
type HelpPreference interface {
	SetShowHelp(show bool)
}

// InputSystem 游戏场景的输入系统
//
// 职责：
//   - 把网格内的鼠标点击转换为格子坐标交给 Session
//   - 游戏结束时生成胜负横幅
//   - 处理 q/r/s/h 快捷键
type InputSystem struct {
	entityManager *ecs.EntityManager
	scores        ScoreSource    // 可为 nil
	helpPref      HelpPreference // 可为 nil
	onQuit        func()
}

// NewInputSystem 创建输入系统
//
// 参数：
//   - scores: 排行榜数据来源，可为 nil（s 键无效）
//   - helpPref: 帮助框显隐偏好，可为 nil
//   - onQuit: 按 q 键时调用
func NewInputSystem(em *ecs.EntityManager, scores ScoreSource, helpPref HelpPreference, onQuit func()) *InputSystem {
	return &InputSystem{
		entityManager: em,
		scores:        scores,
		helpPref:      helpPref,
		onQuit:        onQuit,
	}
}

// Update 读取本帧的鼠标与键盘输入
func (s *InputSystem) Update(deltaTime float64) {
	if click, ok := utils.JustClicked(); ok {
		s.HandleClick(click.X, click.Y, toGameButton(click.Button))
	}
	for _, r := range utils.TypedRunes() {
		s.HandleKey(r)
	}
}

// toGameButton 把 ebiten 的鼠标按键映射为游戏按键
func toGameButton(b ebiten.MouseButton) game.MouseButton {
	switch b {
	case ebiten.MouseButtonLeft:
		return game.MouseLeft
	case ebiten.MouseButtonRight:
		return game.MouseRight
	default:
		return game.MouseMiddle
	}
}

func (s *InputSystem) session() *game.Session {
	_, board, ok := ecs.First[*components.BoardComponent](s.entityManager)
	if !ok {
		return nil
	}
	return board.Session
}

// HandleClick 处理一次屏幕点击，网格外的点击被忽略
func (s *InputSystem) HandleClick(x, y int, button game.MouseButton) game.Outcome {
	session := s.session()
	if session == nil {
		return game.Outcome{}
	}

	row, col, ok := utils.MouseToGridCoords(x, y)
	if !ok {
		log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("click outside grid ignored")
		return game.Outcome{}
	}

	out := session.Click(row, col, button)
	if out.Won || out.Lost {
		entities.NewBanner(s.entityManager, out.Won)
		if out.Won && session.Rank() > 0 {
			s.showScores(session)
		}
	}
	return out
}

// HandleKey 处理一个输入字符
func (s *InputSystem) HandleKey(r rune) game.KeyAction {
	action := game.ParseKey(r)
	if session := s.session(); session != nil {
		action = session.KeyTyped(r)
	}

	switch action {
	case game.KeyQuit:
		if s.onQuit != nil {
			s.onQuit()
		}
	case game.KeyRestart:
		s.clearOverlays()
	case game.KeyToggleScores:
		s.toggleScores()
	case game.KeyToggleHelp:
		s.toggleHelp()
	default:
		log.WithField("key", string(r)).Debug("key ignored")
	}
	return action
}

// clearOverlays 重新开局后清掉横幅，收起排行榜
func (s *InputSystem) clearOverlays() {
	for _, id := range ecs.GetEntitiesWith1[*components.BannerComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()

	if _, panel, ok := ecs.First[*components.ScoresPanelComponent](s.entityManager); ok {
		panel.IsActive = false
		panel.Highlight = 0
	}
}

func (s *InputSystem) showScores(session *game.Session) {
	_, panel, ok := ecs.First[*components.ScoresPanelComponent](s.entityManager)
	if !ok || s.scores == nil {
		return
	}
	panel.Entries = s.scores.TopScores(session.Difficulty().Name)
	panel.Highlight = session.Rank()
	panel.IsActive = true
}

func (s *InputSystem) toggleScores() {
	_, panel, ok := ecs.First[*components.ScoresPanelComponent](s.entityManager)
	if !ok {
		return
	}
	if panel.IsActive {
		panel.IsActive = false
		return
	}
	if session := s.session(); session != nil {
		s.showScores(session)
	}
}

func (s *InputSystem) toggleHelp() {
	_, help, ok := ecs.First[*components.HelpBoxComponent](s.entityManager)
	if !ok {
		return
	}
	help.IsActive = !help.IsActive
	if s.helpPref != nil {
		s.helpPref.SetShowHelp(help.IsActive)
	}
}
