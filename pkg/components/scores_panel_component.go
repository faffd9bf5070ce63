package components

import "github.com/gonewx/minesweeper/pkg/game"

// ScoresPanelComponent 排行榜面板
type ScoresPanelComponent struct {
	Difficulty string           // 难度显示名
	Entries    []game.ScoreEntry // 打开面板时刷新
	Highlight  int              // 本局名次（1 开始），0 不高亮
	IsActive   bool
	Unsaved    bool // 排行榜只在内存中，退出后丢失
}
