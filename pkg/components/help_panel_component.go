package components

// HelpBoxComponent 帮助框
//
// 显示操作说明，按 h 键切换显隐。
type HelpBoxComponent struct {
	Lines    []string
	IsActive bool // 是否显示
}
