package components

import "github.com/decker502/dungeon/pkg/types"

// PlayerComponent 玩家专属状态
type PlayerComponent struct {
	Facing types.Direction // 当前朝向，决定射箭方向和刀的攻击范围
	Ammo   int             // 剩余箭矢（>= 0）
	Alive  bool            // 是否存活

	// 近战计时（以游戏帧为单位的绝对时间）
	KnifeDelay int // 攻击姿势结束时间，姿势在 KnifeDelay-10 之前显示
	KnifeRate  int // 下一次允许挥刀的时间，提前连按会被延长

	// 最近一次挥刀的判定框
	HitBox Box

	DeathCuePlayed bool // 死亡音效是否已播放
}

// IsStabbing 当前帧是否处于挥刀姿势
func (p *PlayerComponent) IsStabbing(tick int) bool {
	return p.KnifeDelay != 0 && p.KnifeDelay-10 > tick
}
