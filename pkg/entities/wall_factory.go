package entities

import (
	"fmt"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/types"
)

// NewWall 创建墙体实体
// door 为 DoorNone 时是普通墙，否则是入口门或出口门（同样阻挡移动）
func NewWall(em *ecs.EntityManager, cfg *config.DungeonConfig, x, y float64, texture int, door types.DoorState) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("dungeon config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Sizes.Wall,
		Height: cfg.Sizes.Wall,
	})
	em.AddComponent(id, &components.WallComponent{
		Texture: texture,
		Door:    door,
	})
	return id, nil
}

// NewArrowDecal 在箭矢撞墙的位置留下一支插在墙上的箭
// 装饰物没有碰撞盒
func NewArrowDecal(em *ecs.EntityManager, x, y, angle float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.DecalComponent{Angle: angle})
	return id, nil
}
