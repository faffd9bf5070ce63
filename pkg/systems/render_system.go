package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/config"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/game"
	"github.com/gonewx/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 绘制所有界面部件
//
// 绘制顺序：棋盘、信息框、按钮与输入框、排行榜面板、横幅。
type RenderSystem struct {
	entityManager *ecs.EntityManager

	cellFont   *text.GoTextFace
	boxFont    *text.GoTextFace
	timerFont  *text.GoTextFace
	bannerFont *text.GoTextFace
}

// NewRenderSystem 创建渲染系统并加载字体
func NewRenderSystem(em *ecs.EntityManager) (*RenderSystem, error) {
	s := &RenderSystem{entityManager: em}

	var err error
	if s.cellFont, err = utils.LoadFont(config.CellFontSize); err != nil {
		return nil, err
	}
	if s.boxFont, err = utils.LoadFont(config.BoxFontSize); err != nil {
		return nil, err
	}
	if s.timerFont, err = utils.LoadFont(config.TimerFontSize); err != nil {
		return nil, err
	}
	if s.bannerFont, err = utils.LoadFont(config.BannerFontSize); err != nil {
		return nil, err
	}
	return s, nil
}

// Draw 绘制当前帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBoards(screen)
	s.drawStatusBoxes(screen)
	s.drawTimers(screen)
	s.drawHelpBoxes(screen)
	s.drawButtons(screen)
	s.drawTextInputs(screen)
	s.drawScoresPanels(screen)
	s.drawBanners(screen)
}

func (s *RenderSystem) drawBoards(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BoardComponent, *components.PositionComponent](s.entityManager) {
		board, _ := ecs.GetComponent[*components.BoardComponent](s.entityManager, id)
		s.drawBoard(screen, board.Session.Board())

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if box, ok := ecs.GetComponent[*components.BoxComponent](s.entityManager, id); ok {
			strokeRect(screen, float32(pos.X), float32(pos.Y), float32(box.Width), float32(box.Height), config.ColorBorder)
		}
	}
}

// drawBoard 绘制网格：未翻开为凸起灰色，翻开的安全格子为凹陷绿色并显示邻居地雷数，
// 翻开的地雷为凹陷红色。格子位置与鼠标映射共用 utils 的网格坐标
func (s *RenderSystem) drawBoard(screen *ebiten.Image, b *game.Board) {
	exploded, hasExploded := b.Exploded()

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			cell, _ := b.Cell(row, col)
			cx, cy := utils.GridToScreenCoords(row, col)
			x, y := float32(cx), float32(cy)
			size := float32(config.CellSize)

			switch {
			case !cell.IsRevealed:
				drawBevelCell(screen, x, y, size, config.ColorCellHidden, true)
				if cell.IsFlagged {
					drawFlag(screen, x, y, size)
				}
			case cell.IsMine:
				fill := config.ColorCellMine
				if hasExploded && exploded == (game.Position{Row: row, Col: col}) {
					fill = config.ColorExploded
				}
				drawBevelCell(screen, x, y, size, fill, false)
				vector.DrawFilledCircle(screen, x+size/2, y+size/2, size/4, config.ColorBorder, true)
			default:
				drawBevelCell(screen, x, y, size, config.ColorCellSafe, false)
				if !cell.CoastIsClear() {
					utils.DrawCenteredText(screen, fmt.Sprint(cell.NeighborMineCount), s.cellFont,
						float64(x+size/2), float64(y+size/2), config.NeighborCountColor(cell.NeighborMineCount))
				}
			}
		}
	}
}

// drawBevelCell 绘制带立体边框的格子，raised 为 true 时左上亮右下暗，反之为凹陷
func drawBevelCell(screen *ebiten.Image, x, y, size float32, fill color.RGBA, raised bool) {
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)

	light, dark := config.ColorBevelLight, config.ColorBevelDark
	if !raised {
		light, dark = dark, light
	}
	bevel := float32(config.CellBevel)
	vector.DrawFilledRect(screen, x, y, size, bevel/2, light, false)
	vector.DrawFilledRect(screen, x, y, bevel/2, size, light, false)
	vector.DrawFilledRect(screen, x, y+size-bevel/2, size, bevel/2, dark, false)
	vector.DrawFilledRect(screen, x+size-bevel/2, y, bevel/2, size, dark, false)
}

// drawFlag 在格子中画一面小旗
func drawFlag(screen *ebiten.Image, x, y, size float32) {
	poleX := x + size*0.6
	vector.StrokeLine(screen, poleX, y+size*0.2, poleX, y+size*0.8, 1.5, config.ColorBorder, true)
	vector.DrawFilledRect(screen, x+size*0.25, y+size*0.2, size*0.35, size*0.25, config.ColorFlag, true)
}

// strokeRect 绘制矩形边框
func strokeRect(screen *ebiten.Image, x, y, width, height float32, clr color.Color) {
	vector.StrokeRect(screen, x, y, width, height, 2, clr, true)
}

// drawInfoBox 绘制底部信息框的背景与边框
func drawInfoBox(screen *ebiten.Image, pos *components.PositionComponent, box *components.BoxComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(box.Width), float32(box.Height)
	vector.DrawFilledRect(screen, x, y, w, h, config.ColorBoxFill, false)
	strokeRect(screen, x, y, w, h, config.ColorBorder)
}

func (s *RenderSystem) drawStatusBoxes(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.StatusBoxComponent](s.entityManager) {
		status, _ := ecs.GetComponent[*components.StatusBoxComponent](s.entityManager, id)
		pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		box, okBox := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
		if !okPos || !okBox {
			continue
		}
		drawInfoBox(screen, pos, box)
		utils.DrawTextLines(screen, status.Lines, s.boxFont, pos.X+8, pos.Y+6, 16, config.ColorText)
	}
}

func (s *RenderSystem) drawTimers(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.TimerComponent](s.entityManager) {
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)
		pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		box, okBox := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
		if !okPos || !okBox {
			continue
		}
		drawInfoBox(screen, pos, box)

		clr := config.ColorText
		if !timer.Running && timer.Seconds > 0 {
			clr = config.ColorLoseBanner
		}
		utils.DrawCenteredText(screen, fmt.Sprintf("%03d", timer.Seconds), s.timerFont,
			pos.X+box.Width/2, pos.Y+box.Height/2, clr)
	}
}

func (s *RenderSystem) drawHelpBoxes(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.HelpBoxComponent](s.entityManager) {
		help, _ := ecs.GetComponent[*components.HelpBoxComponent](s.entityManager, id)
		if !help.IsActive {
			continue
		}
		pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		box, okBox := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
		if !okPos || !okBox {
			continue
		}
		drawInfoBox(screen, pos, box)
		utils.DrawTextLines(screen, help.Lines, s.boxFont, pos.X+8, pos.Y+6, 16, config.ColorText)
	}
}

func (s *RenderSystem) drawButtons(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		fill := config.ColorCellHidden
		switch {
		case button.State == components.UIDisabled:
			fill = config.ColorBackground
		case button.Selected:
			fill = config.ColorCellSafe
		case button.State == components.UIHovered:
			fill = config.ColorBoxFill
		}

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(button.Width), float32(button.Height)
		vector.DrawFilledRect(screen, x, y, w, h, fill, false)
		strokeRect(screen, x, y, w, h, config.ColorBorder)
		utils.DrawCenteredText(screen, button.Text, s.boxFont, pos.X+button.Width/2, pos.Y+button.Height/2, config.ColorText)
	}
}

func (s *RenderSystem) drawTextInputs(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		x, y := float32(pos.X), float32(pos.Y)
		w, h := float32(input.Width), float32(input.Height)
		vector.DrawFilledRect(screen, x, y, w, h, config.ColorTextLight, false)
		strokeRect(screen, x, y, w, h, config.ColorBorder)

		_, lineH := utils.MeasureText("M", s.boxFont)
		textY := pos.Y + (input.Height-lineH)/2
		if input.Text == "" && input.Placeholder != "" {
			utils.DrawText(screen, input.Placeholder, s.boxFont, pos.X+input.PaddingLeft, textY, config.ColorCellHidden)
		} else {
			utils.DrawText(screen, input.Text, s.boxFont, pos.X+input.PaddingLeft, textY, config.ColorText)
		}

		if input.IsFocused && input.CursorVisible {
			before := string([]rune(input.Text)[:min(input.CursorPosition, len([]rune(input.Text)))])
			cw, _ := utils.MeasureText(before, s.boxFont)
			cx := float32(pos.X + input.PaddingLeft + cw + 1)
			vector.StrokeLine(screen, cx, float32(textY), cx, float32(textY+lineH), 1, config.ColorText, true)
		}
	}
}

func (s *RenderSystem) drawScoresPanels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ScoresPanelComponent](s.entityManager) {
		panel, _ := ecs.GetComponent[*components.ScoresPanelComponent](s.entityManager, id)
		if !panel.IsActive {
			continue
		}
		pos, okPos := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		box, okBox := ecs.GetComponent[*components.BoxComponent](s.entityManager, id)
		if !okPos || !okBox {
			continue
		}

		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(box.Width), float32(box.Height), config.ColorPanel, false)
		utils.DrawCenteredText(screen, ScoresTitle(panel), s.boxFont,
			pos.X+box.Width/2, pos.Y+18, config.ColorTextLight)

		lines := ScoreLines(panel.Entries)
		for i, line := range lines {
			clr := config.ColorTextLight
			if panel.Highlight == i+1 {
				clr = config.ColorFlag
			}
			utils.DrawText(screen, line, s.boxFont, pos.X+20, pos.Y+40+float64(i)*24, clr)
		}
	}
}

// ScoresTitle 排行榜面板标题，成绩不落盘时加上提示
func ScoresTitle(panel *components.ScoresPanelComponent) string {
	title := fmt.Sprintf("Top scores - %s", panel.Difficulty)
	if panel.Unsaved {
		title += " (unsaved)"
	}
	return title
}

// ScoreLines 把排行榜格式化为显示用的文本行
func ScoreLines(entries []game.ScoreEntry) []string {
	if len(entries) == 0 {
		return []string{"No scores yet"}
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%2d. %-16s %4ds  %s", i+1, e.Name, e.Seconds, e.Date.Local().Format("2006-01-02"))
	}
	return lines
}

func (s *RenderSystem) drawBanners(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.BannerComponent](s.entityManager) {
		banner, _ := ecs.GetComponent[*components.BannerComponent](s.entityManager, id)
		utils.DrawCenteredText(screen, banner.Text, s.bannerFont, banner.CenterX, banner.Y, banner.Color)
	}
}
