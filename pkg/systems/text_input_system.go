package systems

import (
	"unicode"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/gonewx/minesweeper/pkg/ecs"
	"github.com/gonewx/minesweeper/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 文本输入系统
// 处理文本输入框的键盘输入、光标闪烁等逻辑
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
	}
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	runes := utils.TypedRunes()

	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)

		if len(runes) > 0 {
			s.insertText(input, string(runes))
			s.showCursor(input)
		}
		if utils.KeyRepeat(ebiten.KeyBackspace) {
			s.deleteCharBefore(input)
			s.showCursor(input)
		}
		if utils.KeyRepeat(ebiten.KeyDelete) {
			s.deleteCharAfter(input)
			s.showCursor(input)
		}
		if utils.KeyRepeat(ebiten.KeyArrowLeft) {
			s.moveCursorLeft(input)
			s.showCursor(input)
		}
		if utils.KeyRepeat(ebiten.KeyArrowRight) {
			s.moveCursorRight(input)
			s.showCursor(input)
		}
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= cursorBlinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// showCursor 输入时光标应该可见
func (s *TextInputSystem) showCursor(input *components.TextInputComponent) {
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// insertText 在光标位置插入文本
// 玩家名只允许字母、数字、空格、下划线和连字符
func (s *TextInputSystem) insertText(input *components.TextInputComponent, text string) {
	var filtered []rune
	for _, r := range text {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-') {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.WithField("max", input.MaxLength).Debug("text input length limit reached")
		return
	}

	pos := min(max(input.CursorPosition, 0), len(runes))
	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:pos]...)
	result = append(result, filtered...)
	result = append(result, runes[pos:]...)

	input.Text = string(result)
	input.CursorPosition = pos + len(filtered)
}

// deleteCharBefore 删除光标前的字符（退格）
func (s *TextInputSystem) deleteCharBefore(input *components.TextInputComponent) {
	if input.CursorPosition == 0 {
		return
	}

	runes := []rune(input.Text)
	input.Text = string(append(runes[:input.CursorPosition-1], runes[input.CursorPosition:]...))
	input.CursorPosition--
}

// deleteCharAfter 删除光标后的字符（Delete键）
func (s *TextInputSystem) deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CursorPosition >= len(runes) {
		return
	}

	input.Text = string(append(runes[:input.CursorPosition], runes[input.CursorPosition+1:]...))
}

// moveCursorLeft 光标左移
func (s *TextInputSystem) moveCursorLeft(input *components.TextInputComponent) {
	if input.CursorPosition > 0 {
		input.CursorPosition--
	}
}

// moveCursorRight 光标右移
func (s *TextInputSystem) moveCursorRight(input *components.TextInputComponent) {
	if input.CursorPosition < len([]rune(input.Text)) {
		input.CursorPosition++
	}
}
