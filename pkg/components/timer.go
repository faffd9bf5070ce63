package components

// TimerComponent 计时器显示框
// 计时本身由 game.Session 完成，这里只缓存要显示的整秒数
type TimerComponent struct {
	Seconds int  // 显示的秒数
	Running bool // 是否在走（控制文字颜色）
}
