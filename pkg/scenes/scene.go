package scenes

import (
	"fmt"
	"math/rand/v2"

	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/gonewx/minesweeper/pkg/logging"
)

var log = logging.For("scenes")

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Services 场景之间共享的依赖
type Services struct {
	Difficulties *config.DifficultyConfig
	Scores       *game.ScoreManager    // 可为 nil（不记录成绩）
	Settings     *game.SettingsManager // 可为 nil（不记忆设置）

	// MinesOverride 大于 0 时覆盖难度预设的地雷数
	MinesOverride int

	// Seed 非 nil 时使用固定种子布雷，便于复现
	Seed *uint64
}

// newRand 返回布雷用的随机源，未设置种子时返回 nil（由 Session 自行播种）
func (s *Services) newRand() *rand.Rand {
	if s.Seed == nil {
		return nil
	}
	return rand.New(rand.NewPCG(*s.Seed, *s.Seed^0x9e3779b97f4a7c15))
}

// resolveDifficulty 查找难度并应用地雷数覆盖
func (s *Services) resolveDifficulty(name string) (config.Difficulty, error) {
	d, err := s.Difficulties.Get(name)
	if err != nil {
		return config.Difficulty{}, err
	}
	if s.MinesOverride > 0 {
		d.Mines = s.MinesOverride
	}
	return d, nil
}

// NewSession 按难度名创建一局游戏，并接入成绩记录
func (s *Services) NewSession(player, difficulty string) (*game.Session, error) {
	d, err := s.resolveDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	session, err := game.NewSession(player, d, s.newRand())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if s.Scores != nil {
		session.SetScoreRecorder(s.Scores)
	}
	return session, nil
}
