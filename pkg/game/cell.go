package game

// Cell 保存棋盘上一个格子的全部状态：
//   - 是否埋有地雷
//   - 周围 8 个格子中的地雷数量
//   - 是否已被翻开
//   - 是否插了旗
//
// 新建的格子是空白的：没有地雷、未翻开、邻居地雷数为 0。
type Cell struct {
	IsMine            bool
	IsRevealed        bool
	IsFlagged         bool
	NeighborMineCount int
}

// PlantMine 在格子中埋下地雷
func (c *Cell) PlantMine() {
	c.IsMine = true
}

// IncrementNeighborMineCount 邻居地雷数加一
func (c *Cell) IncrementNeighborMineCount() {
	c.NeighborMineCount++
}

// SetNeighborMineCount 直接设置邻居地雷数
func (c *Cell) SetNeighborMineCount(count int) {
	c.NeighborMineCount = count
}

// Reveal 翻开格子
func (c *Cell) Reveal() {
	c.IsRevealed = true
}

// ShowMine 如果格子里有地雷则把它翻开，否则不变
func (c *Cell) ShowMine() {
	if c.IsMine {
		c.IsRevealed = true
	}
}

// CoastIsClear 周围没有任何地雷
func (c *Cell) CoastIsClear() bool {
	return c.NeighborMineCount == 0
}
