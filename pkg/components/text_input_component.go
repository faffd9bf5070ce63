package components

// TextInputComponent 文本输入框组件
// 用于在菜单中输入玩家名字
type TextInputComponent struct {
	Text string // 当前输入的文本

	Width  float64 // 输入框宽度（像素）
	Height float64 // 输入框高度（像素）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）

	IsFocused bool // 是否获得焦点（接收键盘输入）

	PaddingLeft float64 // 左内边距（像素）
}
