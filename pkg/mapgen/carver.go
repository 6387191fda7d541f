package mapgen

import (
	"log"
	"math/rand"

	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/types"
)

// CarveResult 挖掘结果
type CarveResult struct {
	DoorRow  int  // 出口门所在行
	Steps    int  // 实际走过的步数
	Fallback bool // 是否触发了强制打通
}

// Carver 随机游走挖掘器（"贪吃蛇"）
//
// 从入口出发向右走，遇到边界就转向垂直方向，并以一定概率随机转向，
// 直到碰到最右一列，那一行就是出口门所在行。
type Carver struct {
	rng *rand.Rand
	cfg *config.DungeonConfig
}

// NewCarver 创建挖掘器
func NewCarver(rng *rand.Rand, cfg *config.DungeonConfig) *Carver {
	return &Carver{rng: rng, cfg: cfg}
}

// Carve 在网格上挖出一条从入口到最右列的地板路径
//
// 参数:
//   - grid: 目标网格（调用方负责事先 Reset）
//   - entrance: 入口格子
//   - roomIndex: 房间序号（仅用于日志）
//
// 返回:
//   - CarveResult: 出口门所在行和挖掘统计
//
// 步数超过 MaxSteps 仍未到达最右列时，会强制打通 FallbackRow 整行，
// 并从入口挖一条竖直通道连上这一行，保证所有地板格子互相连通。
func (c *Carver) Carve(grid *Grid, entrance SpawnPoint, roomIndex int) CarveResult {
	grid.SetFloor(entrance.X, entrance.Y)

	x, y := entrance.X, entrance.Y
	dir := types.DirectionRight

	for step := 1; step <= c.cfg.Carver.MaxSteps; step++ {
		moved := false
		for retry := 0; retry < c.cfg.Carver.MaxTurnRetries; retry++ {
			dx, dy := dir.Delta()
			if grid.InCarveBounds(x+dx, y+dy) {
				x, y = x+dx, y+dy
				moved = true
				break
			}
			dir = c.turn(dir)
		}
		if !moved {
			continue
		}

		grid.SetFloor(x, y)
		if c.rng.Float64() < c.cfg.Carver.TurnChance {
			// 随机转向，避免出现过长的直线走廊
			dir = c.turn(dir)
		}

		if x >= grid.Width-1 {
			return CarveResult{DoorRow: y, Steps: step}
		}
	}

	return c.fallback(grid, entrance, roomIndex)
}

// turn 转向当前方向的两个垂直方向之一（等概率），不会掉头
func (c *Carver) turn(dir types.Direction) types.Direction {
	a, b := dir.Perpendicular()
	if c.rng.Intn(2) == 0 {
		return a
	}
	return b
}

// fallback 强制打通 FallbackRow 并连接入口
func (c *Carver) fallback(grid *Grid, entrance SpawnPoint, roomIndex int) CarveResult {
	row := c.cfg.Grid.FallbackRow
	for x := 1; x < grid.Width; x++ {
		grid.SetFloor(x, row)
	}

	from, to := entrance.Y, row
	if from > to {
		from, to = to, from
	}
	for y := from; y <= to; y++ {
		grid.SetFloor(entrance.X, y)
	}

	log.Printf("[Carver] Room %d: no exit after %d steps, forcing corridor on row %d",
		roomIndex, c.cfg.Carver.MaxSteps, row)

	return CarveResult{DoorRow: row, Steps: c.cfg.Carver.MaxSteps, Fallback: true}
}
