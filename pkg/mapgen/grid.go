// Package mapgen 生成地牢房间：网格、随机路径挖掘和房间内容填充
package mapgen

import "strings"

// Grid 房间的二维占用网格
// cells[x][y] 为 true 表示墙，false 表示地板；y 轴向上
type Grid struct {
	Width  int
	Height int
	cells  [][]bool
}

// SpawnPoint 入口格子，只用于给挖掘器定起点
type SpawnPoint struct {
	X int
	Y int
}

// NewGrid 创建一个全是墙的网格
func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([][]bool, width),
	}
	for x := range g.cells {
		g.cells[x] = make([]bool, height)
	}
	g.Reset()
	return g
}

// Reset 把所有格子重置为墙
func (g *Grid) Reset() {
	for x := range g.cells {
		for y := range g.cells[x] {
			g.cells[x][y] = true
		}
	}
}

// InBounds 坐标是否在网格内
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// InCarveBounds 挖掘器可以进入的范围：0 < x < Width 且 0 < y < Height-1
// 最左列、最下行和最上行始终保留为墙
func (g *Grid) InCarveBounds(x, y int) bool {
	return 0 < x && x < g.Width && 0 < y && y < g.Height-1
}

// IsWall 越界的格子视为墙
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[x][y]
}

// SetFloor 把格子设为地板
func (g *Grid) SetFloor(x, y int) {
	if g.InBounds(x, y) {
		g.cells[x][y] = false
	}
}

// SetWall 把格子设为墙
func (g *Grid) SetWall(x, y int) {
	if g.InBounds(x, y) {
		g.cells[x][y] = true
	}
}

// FloorCells 返回所有地板格子（按列优先顺序）
func (g *Grid) FloorCells() []SpawnPoint {
	floors := make([]SpawnPoint, 0)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if !g.cells[x][y] {
				floors = append(floors, SpawnPoint{X: x, Y: y})
			}
		}
	}
	return floors
}

// ReachableFrom 四连通广度优先搜索，返回从 start 经地板可达的格子集合
// start 本身是墙时返回空集合
func (g *Grid) ReachableFrom(start SpawnPoint) map[SpawnPoint]bool {
	visited := make(map[SpawnPoint]bool)
	if g.IsWall(start.X, start.Y) {
		return visited
	}

	queue := []SpawnPoint{start}
	visited[start] = true
	neighbours := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			n := SpawnPoint{X: p.X + d[0], Y: p.Y + d[1]}
			if visited[n] || g.IsWall(n.X, n.Y) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return visited
}

// String 以 ASCII 形式输出网格，最上面一行是 y = Height-1
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			if g.cells[x][y] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
