package components

// PositionComponent 存储实体中心点的世界坐标
// 世界坐标系原点在地牢左下角，Y 轴向上，一个格子 32 单位
type PositionComponent struct {
	X float64
	Y float64
}
