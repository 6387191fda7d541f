package components

// VelocityComponent 存储实体每帧的位移量
type VelocityComponent struct {
	VX float64 // X方向速度（单位/帧）
	VY float64 // Y方向速度（单位/帧）
}
