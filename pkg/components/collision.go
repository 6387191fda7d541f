package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒中心与实体位置对齐
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度
	Height float64 // 碰撞盒高度
}

// Box 轴对齐矩形（世界坐标，Y 轴向上）
type Box struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// BoxAt 根据中心点和碰撞组件计算包围盒
func BoxAt(pos *PositionComponent, col *CollisionComponent) Box {
	return Box{
		Left:   pos.X - col.Width/2,
		Right:  pos.X + col.Width/2,
		Top:    pos.Y + col.Height/2,
		Bottom: pos.Y - col.Height/2,
	}
}

// Overlaps 两个包围盒是否重叠（边界接触也算碰撞）
func (b Box) Overlaps(o Box) bool {
	return b.Right >= o.Left &&
		b.Left <= o.Right &&
		b.Top >= o.Bottom &&
		b.Bottom <= o.Top
}

// Intersects 两个包围盒内部是否相交（边界接触不算）
// 用于移动阻挡，贴墙行走不会被卡住
func (b Box) Intersects(o Box) bool {
	return b.Right > o.Left &&
		b.Left < o.Right &&
		b.Top > o.Bottom &&
		b.Bottom < o.Top
}

// ContainsPoint 点是否严格位于包围盒内部
func (b Box) ContainsPoint(x, y float64) bool {
	return b.Left < x && x < b.Right && b.Bottom < y && y < b.Top
}

// IsZero 是否为空盒
func (b Box) IsZero() bool {
	return b == Box{}
}
