package components

import "github.com/decker502/dungeon/pkg/types"

// PickupComponent 可拾取物品（箭袋、药水、金币）
type PickupComponent struct {
	Kind types.PickupKind

	// EligibleTick 生成时打上的时间戳
	// 只有当前帧 > EligibleTick 时才能被拾取，防止生成的同一刻被立即吃掉
	EligibleTick int
}

// Collectible 在 tick 这一帧是否可拾取
func (p *PickupComponent) Collectible(tick int) bool {
	return tick > p.EligibleTick
}
