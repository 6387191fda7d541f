package entities

import (
	"fmt"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/types"
)

// NewChest 创建未打开的宝箱
func NewChest(em *ecs.EntityManager, cfg *config.DungeonConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("dungeon config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Sizes.Chest,
		Height: cfg.Sizes.Chest,
	})
	em.AddComponent(id, &components.ChestComponent{})
	return id, nil
}

// NewPickup 创建可拾取物品
//
// 参数:
//   - kind: 箭袋、药水或金币
//   - x, y: 世界坐标
//   - eligibleTick: 生成时刻，之后的帧才能被拾取
func NewPickup(em *ecs.EntityManager, cfg *config.DungeonConfig, kind types.PickupKind, x, y float64, eligibleTick int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("dungeon config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Sizes.Pickup,
		Height: cfg.Sizes.Pickup,
	})
	em.AddComponent(id, &components.PickupComponent{
		Kind:         kind,
		EligibleTick: eligibleTick,
	})
	return id, nil
}
