package entities

import (
	"fmt"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
)

// NewEnemy 创建恶魔实体
// target 是追踪的玩家实体，只作为查询句柄使用
func NewEnemy(em *ecs.EntityManager, cfg *config.DungeonConfig, x, y float64, target ecs.EntityID) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("dungeon config cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Sizes.Enemy,
		Height: cfg.Sizes.Enemy,
	})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: cfg.Enemy.MaxHealth,
		MaxHealth:     cfg.Enemy.MaxHealth,
	})
	em.AddComponent(id, &components.EnemyComponent{
		Target: target,
		State:  components.EnemyIdle,
	})

	return id, nil
}
