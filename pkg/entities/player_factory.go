package entities

import (
	"fmt"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/types"
)

// NewPlayer 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 地牢配置（碰撞盒尺寸、生命上限）
//   - x, y: 出生点世界坐标（格子中心）
//   - health: 继承自上一个房间的生命值
//   - ammo: 继承自上一个房间的箭矢数量
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: em 或 cfg 为 nil 时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.DungeonConfig, x, y float64, health, ammo int) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("dungeon config cannot be nil")
	}

	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Sizes.Player,
		Height: cfg.Sizes.Player,
	})

	hp := &components.HealthComponent{MaxHealth: cfg.Player.MaxHealth}
	hp.Heal(health)
	em.AddComponent(id, hp)

	if ammo < 0 {
		ammo = 0
	}
	em.AddComponent(id, &components.PlayerComponent{
		Facing: types.DirectionRight,
		Ammo:   ammo,
		Alive:  true,
	})

	return id, nil
}
