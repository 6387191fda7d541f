package systems

import (
	"log"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/entities"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/types"
)

// OpenChest 打开宝箱并掉落一件物品
//
// 已打开的宝箱是无操作，返回 false。
// 首次打开时等概率掉落箭袋或药水，掉落物在 PickupDelay 帧之后才能拾取。
func OpenChest(w *World, chestID ecs.EntityID) bool {
	chest, ok := ecs.GetComponent[*components.ChestComponent](w.EM, chestID)
	if !ok || chest.Opened {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.EM, chestID)
	if !ok {
		return false
	}

	chest.Opened = true
	w.play(game.SoundChestOpen)

	kind := types.PickupAmmo
	if w.Rand.Intn(2) == 1 {
		kind = types.PickupPotion
	}
	eligible := w.State.Tick + w.Config.Pickup.Delay
	if _, err := entities.NewPickup(w.EM, w.Config, kind, pos.X, pos.Y, eligible); err != nil {
		log.Printf("[Chest] Warning: failed to spawn %s: %v", kind, err)
	}
	return true
}
