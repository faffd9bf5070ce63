// Package tui 终端版扫雷前端
//
// 与桌面版共用 game.Session、难度配置和排行榜，只替换输入与绘制：
// 方向键移动选中格子，回车翻开，f 插旗，r 重新开始，s 查看排行榜，h 显示或隐藏按键说明，q 退出。
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/gonewx/minesweeper/pkg/logging"
	"github.com/rivo/tview"
)

var log = logging.For("tui")

// tickInterval 计时器刷新间隔
const tickInterval = 200 * time.Millisecond

const controlsLine = "Arrows: move   Enter: reveal   f: flag   r: restart   s: scores   h: help   q: quit"

// ScoreSource 提供排行榜数据
type ScoreSource interface {
	TopScores(difficulty string) []game.ScoreEntry
}

// Frontend 终端界面
type Frontend struct {
	app     *tview.Application
	table   *tview.Table
	status  *tview.TextView
	session *game.Session
	scores  ScoreSource // 可为 nil

	showScores bool
	showHelp   bool
}

// New 创建终端界面，session 必须已经布雷
func New(session *game.Session, scores ScoreSource) *Frontend {
	f := &Frontend{
		app:     tview.NewApplication(),
		table:   tview.NewTable(),
		status:  tview.NewTextView(),
		session:  session,
		scores:   scores,
		showHelp: true,
	}

	f.table.SetSelectable(true, true)
	f.table.SetBorder(true).SetTitle(" Minesweeper ")
	f.table.Select(0, 0)
	f.table.SetInputCapture(f.HandleKey)

	f.status.SetDynamicColors(true)
	f.status.SetBorder(true)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(f.table, session.Board().Rows()+2, 0, true).
		AddItem(f.status, 0, 1, false)
	f.app.SetRoot(layout, true)

	f.render()
	return f
}

// Run 运行界面直到玩家退出或 ctx 取消
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go f.tick(ctx)
	go func() {
		<-ctx.Done()
		f.app.Stop()
	}()

	return f.app.Run()
}

// tick 在界面线程上推进计时器
func (f *Frontend) tick(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.app.QueueUpdateDraw(func() {
				f.session.Tick(tickInterval.Seconds())
				f.renderStatus()
			})
		}
	}
}

// HandleKey 处理按键；方向键交给表格自己移动选中格子
func (f *Frontend) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	row, col := f.table.GetSelection()

	switch event.Key() {
	case tcell.KeyEnter:
		f.click(row, col, game.MouseLeft)
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		if r == 'f' || r == 'F' {
			f.click(row, col, game.MouseRight)
			return nil
		}
		switch f.session.KeyTyped(r) {
		case game.KeyQuit:
			f.app.Stop()
		case game.KeyRestart:
			f.showScores = false
			f.render()
		case game.KeyToggleScores:
			f.showScores = !f.showScores
			f.renderStatus()
		case game.KeyToggleHelp:
			f.showHelp = !f.showHelp
			f.renderStatus()
		default:
			log.WithField("key", string(r)).Debug("key ignored")
		}
		return nil
	}
	return event
}

func (f *Frontend) click(row, col int, button game.MouseButton) {
	out := f.session.Click(row, col, button)
	if !out.Changed() {
		return
	}
	if out.Won && f.session.Rank() > 0 {
		f.showScores = true
	}
	f.render()
}

// render 重绘整个棋盘和状态栏
func (f *Frontend) render() {
	b := f.session.Board()
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			cell, _ := b.Cell(row, col)
			text, color := CellText(cell)
			f.table.SetCell(row, col, tview.NewTableCell(text).
				SetAlign(tview.AlignCenter).
				SetTextColor(color))
		}
	}
	f.renderStatus()
}

func (f *Frontend) renderStatus() {
	f.status.SetText(f.StatusText())
}

// StatusText 状态栏内容
func (f *Frontend) StatusText() string {
	s := f.session
	b := s.Board()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Player: %s   Difficulty: %s   Time: %03d\n", s.Player(), s.Difficulty().Label, s.Seconds())
	fmt.Fprintf(&sb, "Mines: %d   Flags: %d   Cells remaining: %d\n", b.NumMinesDeployed(), b.NumFlags(), b.NumCellsRemaining())

	switch {
	case b.Won():
		sb.WriteString("[green]You win! Congrats![-]\n")
	case b.Lost():
		sb.WriteString("[red]You have lost, try again![-]\n")
	}
	if f.showHelp {
		sb.WriteString(controlsLine + "\n")
	}

	if f.showScores && f.scores != nil {
		fmt.Fprintf(&sb, "Top scores (%s):\n", s.Difficulty().Label)
		entries := f.scores.TopScores(s.Difficulty().Name)
		if len(entries) == 0 {
			sb.WriteString("  no scores yet\n")
		}
		for i, e := range entries {
			fmt.Fprintf(&sb, "  %2d. %-16s %4ds\n", i+1, tview.Escape(e.Name), e.Seconds)
		}
	}
	return sb.String()
}

// CellText 返回格子在终端中的字符和颜色
func CellText(cell game.Cell) (string, tcell.Color) {
	switch {
	case !cell.IsRevealed && cell.IsFlagged:
		return "F", tcell.ColorYellow
	case !cell.IsRevealed:
		return ".", tcell.ColorGray
	case cell.IsMine:
		return "*", tcell.ColorRed
	case cell.CoastIsClear():
		return " ", tcell.ColorGreen
	case cell.NeighborMineCount == 1:
		return "1", tcell.ColorWhite
	case cell.NeighborMineCount == 2:
		return "2", tcell.ColorBlue
	default:
		return fmt.Sprint(cell.NeighborMineCount), tcell.ColorRed
	}
}
