package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/gonewx/minesweeper/pkg/logging"
	"github.com/sirupsen/logrus"
)

var log = logging.For("game")

var (
	// ErrTooManyMines 请求的地雷数超过格子总数
	ErrTooManyMines = errors.New("too many mines for board")
	// ErrMinesAlreadyDeployed 同一块棋盘只能布雷一次
	ErrMinesAlreadyDeployed = errors.New("mines already deployed")
)

// Position 棋盘坐标（行、列均从 0 开始）
type Position struct {
	Row, Col int
}

// RevealResult 翻开操作的结果
type RevealResult int

const (
	// RevealIgnored 点击被忽略（越界、已翻开、已插旗或游戏已结束）
	RevealIgnored RevealResult = iota
	// RevealSafe 翻开了安全格子
	RevealSafe
	// RevealMine 踩中地雷
	RevealMine
)

// String 返回结果名称，用于日志
func (r RevealResult) String() string {
	switch r {
	case RevealSafe:
		return "safe"
	case RevealMine:
		return "mine"
	default:
		return "ignored"
	}
}

// Board 管理一局扫雷的棋盘：二维格子数组以及布雷、翻开、插旗的计数
type Board struct {
	rows, cols int
	cells      [][]Cell

	numMines    int // 已布下的地雷数
	numRevealed int // 已翻开的安全格子数
	numFlags    int // 已插旗数

	won, lost bool
	exploded  Position // 踩中的地雷位置，仅在 lost 时有效
}

// NewBoard 创建指定尺寸的空白棋盘，此时还没有布雷
func NewBoard(rows, cols int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// Rows 返回行数
func (b *Board) Rows() int { return b.rows }

// Cols 返回列数
func (b *Board) Cols() int { return b.cols }

// InBounds 判断坐标是否在棋盘内
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Cell 返回指定格子的副本
// 越界时返回空白格子和 false
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row][col], true
}

// forEachNeighbor 遍历周围 8 个在棋盘内的格子
func (b *Board) forEachNeighbor(row, col int, fn func(r, c int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if b.InBounds(r, c) {
				fn(r, c)
			}
		}
	}
}

// DeployMines 随机布下 count 颗地雷
//
// 每次随机选一个格子，已有地雷则重选；每布下一颗，
// 它周围所有在棋盘内的格子邻居地雷数加一。
// 游戏在玩家第一次点击前不会正式开始，所以这里不启动计时器。
func (b *Board) DeployMines(count int, rng *rand.Rand) error {
	if b.numMines > 0 {
		return ErrMinesAlreadyDeployed
	}
	if count < 0 || count > b.rows*b.cols {
		return fmt.Errorf("%w: %d mines on %dx%d board", ErrTooManyMines, count, b.rows, b.cols)
	}

	for b.numMines < count {
		b.PlantMineAt(rng.IntN(b.rows), rng.IntN(b.cols))
	}

	log.WithField("count", count).Debug("mines deployed")
	return nil
}

// PlantMineAt 在指定位置埋雷并更新邻居计数，也用于构造固定布局
// 已有地雷或越界时返回 false
func (b *Board) PlantMineAt(row, col int) bool {
	if !b.InBounds(row, col) || b.cells[row][col].IsMine {
		return false
	}
	b.plantMine(row, col)
	return true
}

func (b *Board) plantMine(row, col int) {
	b.cells[row][col].PlantMine()
	b.numMines++
	b.forEachNeighbor(row, col, func(r, c int) {
		b.cells[r][c].IncrementNeighborMineCount()
	})
}

// NumMinesDeployed 返回已布下的地雷数
func (b *Board) NumMinesDeployed() int {
	return b.numMines
}

// NumCellsRemaining 返回尚未翻开的格子数
func (b *Board) NumCellsRemaining() int {
	return b.rows*b.cols - b.numRevealed
}

// NumRevealed 返回已翻开的安全格子数
func (b *Board) NumRevealed() int {
	return b.numRevealed
}

// NumFlags 返回已插旗数
func (b *Board) NumFlags() int {
	return b.numFlags
}

// Won 所有安全格子都已翻开
func (b *Board) Won() bool { return b.won }

// Lost 踩中了地雷
func (b *Board) Lost() bool { return b.lost }

// IsOver 游戏已结束（胜或负）
func (b *Board) IsOver() bool { return b.won || b.lost }

// Exploded 返回踩中的地雷位置
func (b *Board) Exploded() (Position, bool) {
	return b.exploded, b.lost
}

// Reveal 翻开指定格子
//
//   - 越界、已翻开、已插旗或游戏已结束：忽略
//   - 地雷：游戏失败，显示所有地雷
//   - 安全格子：翻开；若周围没有地雷，则向外扩散翻开相邻格子；
//     翻开的安全格子数达到 格子总数-地雷数 时游戏胜利
func (b *Board) Reveal(row, col int) RevealResult {
	if b.IsOver() || !b.InBounds(row, col) {
		return RevealIgnored
	}

	cell := &b.cells[row][col]
	if cell.IsRevealed || cell.IsFlagged {
		return RevealIgnored
	}

	if cell.IsMine {
		cell.Reveal()
		b.lost = true
		b.exploded = Position{Row: row, Col: col}
		b.ShowMines()
		log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine hit")
		return RevealMine
	}

	b.floodReveal(row, col)

	if b.numRevealed == b.rows*b.cols-b.numMines {
		b.won = true
		log.WithField("revealed", b.numRevealed).Debug("board cleared")
	}
	return RevealSafe
}

// floodReveal 从起点开始翻开格子，邻居地雷数为 0 的格子继续扩散
// 使用显式队列，避免大面积空白区域导致深递归
func (b *Board) floodReveal(row, col int) {
	b.revealSafe(row, col)
	queue := []Position{{Row: row, Col: col}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if !b.cells[p.Row][p.Col].CoastIsClear() {
			continue
		}

		b.forEachNeighbor(p.Row, p.Col, func(r, c int) {
			n := &b.cells[r][c]
			if n.IsRevealed || n.IsFlagged || n.IsMine {
				return
			}
			b.revealSafe(r, c)
			queue = append(queue, Position{Row: r, Col: c})
		})
	}
}

func (b *Board) revealSafe(row, col int) {
	b.cells[row][col].Reveal()
	b.numRevealed++
}

// ToggleFlag 在未翻开的格子上插旗或拔旗
// 越界、已翻开或游戏已结束时返回 false
func (b *Board) ToggleFlag(row, col int) bool {
	if b.IsOver() || !b.InBounds(row, col) {
		return false
	}

	cell := &b.cells[row][col]
	if cell.IsRevealed {
		return false
	}

	cell.IsFlagged = !cell.IsFlagged
	if cell.IsFlagged {
		b.numFlags++
	} else {
		b.numFlags--
	}
	return true
}

// ShowMines 翻开所有地雷（不计入已翻开计数）
func (b *Board) ShowMines() {
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c].ShowMine()
		}
	}
}
