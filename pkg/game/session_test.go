package game

import (
	"errors"
	"testing"

	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	calls []string
	secs  []int
	rank  int
	err   error
}

func (f *fakeRecorder) Submit(difficulty, name string, seconds int) (int, error) {
	f.calls = append(f.calls, difficulty+"/"+name)
	f.secs = append(f.secs, seconds)
	return f.rank, f.err
}

// newFixedSession 创建一个地雷位置固定的会话
func newFixedSession(t *testing.T, mines ...Position) *Session {
	t.Helper()
	s, err := NewSession("alice", config.Difficulty{Name: "easy", Label: "Easy", Mines: 0}, testRand())
	require.NoError(t, err)
	for _, m := range mines {
		require.True(t, s.board.PlantMineAt(m.Row, m.Col))
	}
	return s
}

func TestNewSessionDeploysMines(t *testing.T) {
	s, err := NewSession("bob", config.Difficulty{Name: "medium", Mines: 90}, testRand())
	require.NoError(t, err)

	assert.Equal(t, "bob", s.Player())
	assert.Equal(t, "medium", s.Difficulty().Name)
	assert.Equal(t, config.GridRows, s.Board().Rows())
	assert.Equal(t, config.GridColumns, s.Board().Cols())
	assert.Equal(t, 90, s.Board().NumMinesDeployed())
	assert.False(t, s.TimerRunning())
	assert.Equal(t, 0, s.Seconds())
}

func TestNewSessionRejectsTooManyMines(t *testing.T) {
	_, err := NewSession("bob", config.Difficulty{Name: "silly", Mines: 601}, testRand())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooManyMines))
}

func TestSessionTimerStartsOnFirstReveal(t *testing.T) {
	s := newFixedSession(t, Position{0, 2}, Position{19, 29})

	s.Tick(1.5)
	assert.Equal(t, 0.0, s.elapsed, "timer must not run before the first reveal")

	out := s.Click(0, 1, MouseRight)
	assert.True(t, out.Flagged)
	assert.False(t, out.Started)
	assert.False(t, s.TimerRunning())

	s.Click(0, 1, MouseRight)
	out = s.Click(0, 1, MouseLeft)
	assert.Equal(t, RevealSafe, out.Result)
	assert.True(t, out.Started)
	assert.True(t, s.TimerRunning())

	s.Tick(1.5)
	s.Tick(1.0)
	assert.Equal(t, 2, s.Seconds())

	out = s.Click(0, 3, MouseLeft)
	assert.Equal(t, RevealSafe, out.Result)
	assert.False(t, out.Started, "only the first reveal starts the timer")
}

func TestSessionLossStopsTimer(t *testing.T) {
	s := newFixedSession(t, Position{0, 2}, Position{19, 29})

	s.Click(0, 1, MouseLeft)
	s.Tick(3.2)

	out := s.Click(0, 2, MouseLeft)
	assert.Equal(t, RevealMine, out.Result)
	assert.True(t, out.Lost)
	assert.False(t, out.Won)
	assert.False(t, s.TimerRunning())

	s.Tick(10)
	assert.Equal(t, 3, s.Seconds())

	// 结束后的点击全部忽略
	assert.False(t, s.Click(5, 5, MouseLeft).Changed())
	assert.False(t, s.Click(5, 5, MouseRight).Changed())
	cell, _ := s.Board().Cell(5, 5)
	assert.False(t, cell.IsRevealed)
	assert.False(t, cell.IsFlagged)
}

func TestSessionWinSubmitsScore(t *testing.T) {
	s := newFixedSession(t, Position{19, 29})
	rec := &fakeRecorder{rank: 1}
	s.SetScoreRecorder(rec)

	out := s.Click(0, 0, MouseLeft)
	assert.True(t, out.Won)
	assert.False(t, s.TimerRunning())
	assert.Equal(t, []string{"easy/alice"}, rec.calls)
	assert.Equal(t, []int{0}, rec.secs)
	assert.Equal(t, 1, s.Rank())
}

func TestSessionWinRecorderError(t *testing.T) {
	s := newFixedSession(t, Position{19, 29})
	s.SetScoreRecorder(&fakeRecorder{rank: 3, err: errors.New("disk full")})

	out := s.Click(0, 0, MouseLeft)
	assert.True(t, out.Won)
	assert.Equal(t, 0, s.Rank())
}

func TestSessionIgnoresMiddleAndOutside(t *testing.T) {
	s := newFixedSession(t, Position{0, 2})

	assert.False(t, s.Click(0, 0, MouseMiddle).Changed())
	assert.False(t, s.Click(-1, 0, MouseLeft).Changed())
	assert.False(t, s.Click(0, config.GridColumns, MouseRight).Changed())
	assert.False(t, s.Click(0, 0, MouseButton(42)).Changed())
	assert.Equal(t, 0, s.Board().NumRevealed())
	assert.False(t, s.TimerRunning())
}

func TestSessionRestart(t *testing.T) {
	s, err := NewSession("carol", config.Difficulty{Name: "hard", Mines: 120}, testRand())
	require.NoError(t, err)

	old := s.Board()
	for r := 0; r < old.Rows(); r++ {
		if cell, _ := old.Cell(r, 0); !cell.IsMine {
			s.Click(r, 0, MouseLeft)
			break
		}
	}
	s.Tick(4)

	require.NoError(t, s.Restart())
	assert.NotSame(t, old, s.Board())
	assert.Equal(t, 120, s.Board().NumMinesDeployed())
	assert.Equal(t, 0, s.Board().NumRevealed())
	assert.False(t, s.TimerRunning())
	assert.Equal(t, 0.0, s.elapsed)
	assert.Equal(t, "carol", s.Player())
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		r    rune
		want KeyAction
	}{
		{'q', KeyQuit},
		{'Q', KeyQuit},
		{'r', KeyRestart},
		{'R', KeyRestart},
		{'s', KeyToggleScores},
		{'S', KeyToggleScores},
		{'h', KeyToggleHelp},
		{'H', KeyToggleHelp},
		{'x', KeyNone},
		{' ', KeyNone},
		{'1', KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseKey(tt.r), "key %q", tt.r)
	}
}

func TestSessionKeyTyped(t *testing.T) {
	s := newFixedSession(t, Position{0, 2})
	s.Click(0, 1, MouseLeft)
	s.Tick(3)
	old := s.Board()

	assert.Equal(t, KeyToggleScores, s.KeyTyped('s'))
	assert.Equal(t, KeyToggleHelp, s.KeyTyped('H'))
	assert.Equal(t, KeyQuit, s.KeyTyped('q'))
	assert.Equal(t, KeyNone, s.KeyTyped('x'))
	assert.Same(t, old, s.Board(), "only r replaces the board")
	assert.True(t, s.TimerRunning())

	assert.Equal(t, KeyRestart, s.KeyTyped('R'))
	assert.NotSame(t, old, s.Board())
	assert.False(t, s.TimerRunning())
	assert.Zero(t, s.Seconds())
	assert.Equal(t, "alice", s.Player())
}
