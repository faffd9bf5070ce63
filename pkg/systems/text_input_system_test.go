package systems

import (
	"testing"

	"github.com/gonewx/minesweeper/pkg/components"
	"github.com/stretchr/testify/assert"
)

func TestTextInputInsertAndDelete(t *testing.T) {
	s := &TextInputSystem{}
	input := &components.TextInputComponent{MaxLength: 8}

	s.insertText(input, "ab!c")
	assert.Equal(t, "abc", input.Text, "punctuation is filtered")
	assert.Equal(t, 3, input.CursorPosition)

	s.moveCursorLeft(input)
	s.insertText(input, "X")
	assert.Equal(t, "abXc", input.Text)
	assert.Equal(t, 3, input.CursorPosition)

	s.deleteCharBefore(input)
	assert.Equal(t, "abc", input.Text)
	assert.Equal(t, 2, input.CursorPosition)

	s.deleteCharAfter(input)
	assert.Equal(t, "ab", input.Text)

	s.moveCursorRight(input)
	s.moveCursorRight(input)
	assert.Equal(t, 2, input.CursorPosition)

	s.insertText(input, "123456789")
	assert.Equal(t, "ab", input.Text, "over the length limit")

	s.insertText(input, "我")
	assert.Equal(t, "ab", input.Text, "non-ascii filtered")

	input.CursorPosition = 0
	s.deleteCharBefore(input)
	assert.Equal(t, "ab", input.Text)
}

func TestTextInputCursorBlink(t *testing.T) {
	s := &TextInputSystem{}
	input := &components.TextInputComponent{CursorVisible: true}

	s.updateCursorBlink(input, 0.3)
	assert.True(t, input.CursorVisible)
	s.updateCursorBlink(input, 0.3)
	assert.False(t, input.CursorVisible)

	s.showCursor(input)
	assert.True(t, input.CursorVisible)
	assert.Zero(t, input.CursorBlinkTimer)
}
