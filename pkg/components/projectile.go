package components

// ArrowComponent 玩家射出的箭
// 直线飞行直到撞上东西
type ArrowComponent struct {
	Angle float64 // 贴图角度（度）
}

// FireballComponent 恶魔发射的火球
type FireballComponent struct {
	Angle float64 // 贴图角度，每帧持续旋转

	// Reflected 被刀弹反后置为 true
	// 弹反后的火球不再伤害玩家，转而击杀恶魔
	Reflected bool
}
