package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/sirupsen/logrus"
)

// MouseButton 鼠标按键，与具体前端无关
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// KeyAction 键盘输入对应的游戏动作
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyQuit
	KeyRestart
	KeyToggleScores
	KeyToggleHelp
)

// ParseKey 把输入字符映射为动作，大小写不敏感；其他字符返回 KeyNone
func ParseKey(r rune) KeyAction {
	switch r {
	case 'q', 'Q':
		return KeyQuit
	case 'r', 'R':
		return KeyRestart
	case 's', 'S':
		return KeyToggleScores
	case 'h', 'H':
		return KeyToggleHelp
	default:
		return KeyNone
	}
}

// ScoreRecorder 接收胜利成绩，返回名次（1 开始，未进榜为 0）
type ScoreRecorder interface {
	Submit(difficulty, name string, seconds int) (int, error)
}

// Outcome 一次点击造成的变化，供界面层决定是否启动计时器、弹出横幅
type Outcome struct {
	Result  RevealResult
	Flagged bool // 右键成功切换了旗子
	Started bool // 这次点击让计时器开始计时
	Won     bool // 这次点击赢得了游戏
	Lost    bool // 这次点击踩中了地雷
}

// Changed 点击是否改变了棋盘
func (o Outcome) Changed() bool {
	return o.Result != RevealIgnored || o.Flagged
}

// Session 一局游戏：玩家、难度、棋盘和计时
//
// 计时器在第一次成功翻开格子时启动，胜利或失败时停止。
type Session struct {
	player     string
	difficulty config.Difficulty
	board      *Board
	rng        *rand.Rand
	scores     ScoreRecorder

	elapsed float64
	running bool
	rank    int
}

// NewSession 创建一局游戏并立即布雷
//
// 参数：
//   - player: 玩家名
//   - difficulty: 难度预设，决定地雷数
//   - rng: 随机源，传入固定种子可以复现布局
func NewSession(player string, difficulty config.Difficulty, rng *rand.Rand) (*Session, error) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Session{
		player:     player,
		difficulty: difficulty,
		rng:        rng,
	}
	if err := s.newBoard(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newBoard() error {
	board := NewBoard(config.GridRows, config.GridColumns)
	if err := board.DeployMines(s.difficulty.Mines, s.rng); err != nil {
		return fmt.Errorf("failed to deploy mines for %q: %w", s.difficulty.Name, err)
	}
	s.board = board
	s.elapsed = 0
	s.running = false
	s.rank = 0
	return nil
}

// SetScoreRecorder 设置胜利时提交成绩的目标，可为 nil
func (s *Session) SetScoreRecorder(r ScoreRecorder) {
	s.scores = r
}

// Restart 以相同的玩家和难度重新开始
func (s *Session) Restart() error {
	if err := s.newBoard(); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"player":     s.player,
		"difficulty": s.difficulty.Name,
	}).Debug("session restarted")
	return nil
}

// Player 返回玩家名
func (s *Session) Player() string { return s.player }

// Difficulty 返回难度预设
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// Board 返回当前棋盘
func (s *Session) Board() *Board { return s.board }

// Seconds 返回显示用的整秒数
func (s *Session) Seconds() int { return int(s.elapsed) }

// TimerRunning 计时器是否在走
func (s *Session) TimerRunning() bool { return s.running }

// Rank 返回本局成绩的名次，0 表示未胜利或未进榜
func (s *Session) Rank() int { return s.rank }

// Tick 推进计时器
func (s *Session) Tick(dt float64) {
	if s.running {
		s.elapsed += dt
	}
}

// Click 处理一次棋盘点击
//
//   - 游戏结束后、中键以及未知按键：忽略
//   - 左键：翻开格子，第一次成功翻开时启动计时器
//   - 右键：切换旗子
func (s *Session) Click(row, col int, button MouseButton) Outcome {
	var out Outcome
	if s.board.IsOver() {
		return out
	}

	switch button {
	case MouseLeft:
		out.Result = s.board.Reveal(row, col)
	case MouseRight:
		out.Flagged = s.board.ToggleFlag(row, col)
		return out
	default:
		return out
	}

	if out.Result == RevealIgnored {
		return out
	}

	if !s.running && !s.board.IsOver() {
		s.running = true
		out.Started = true
	}

	switch {
	case s.board.Won():
		out.Won = true
		s.finish()
		s.submitScore()
	case s.board.Lost():
		out.Lost = true
		s.finish()
	}
	return out
}

// KeyTyped 处理键盘输入
//
// r 在会话内重新开局，其余动作（退出、排行榜、帮助）返回给界面层处理。
// 重新开局失败时返回 KeyNone。
func (s *Session) KeyTyped(r rune) KeyAction {
	action := ParseKey(r)
	if action != KeyRestart {
		return action
	}
	if err := s.Restart(); err != nil {
		log.WithError(err).Error("failed to restart game")
		return KeyNone
	}
	return action
}

func (s *Session) finish() {
	s.running = false
	log.WithFields(logrus.Fields{
		"player":   s.player,
		"won":      s.board.Won(),
		"seconds":  s.Seconds(),
		"revealed": s.board.NumRevealed(),
	}).Info("game over")
}

func (s *Session) submitScore() {
	if s.scores == nil {
		return
	}
	rank, err := s.scores.Submit(s.difficulty.Name, s.player, s.Seconds())
	if err != nil {
		log.WithError(err).Warn("failed to record score")
		return
	}
	s.rank = rank
}
