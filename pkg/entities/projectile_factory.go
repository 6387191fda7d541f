package entities

import (
	"fmt"
	"math"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/types"
)

// ArrowAngle 箭矢贴图的旋转角度（度），贴图默认朝上
func ArrowAngle(facing types.Direction) float64 {
	switch facing {
	case types.DirectionRight:
		return -90
	case types.DirectionLeft:
		return 90
	case types.DirectionDown:
		return 180
	default:
		return 0
	}
}

// NewArrow 创建玩家射出的箭矢
// 箭矢沿玩家朝向以 ArrowSpeed 匀速飞行
func NewArrow(em *ecs.EntityManager, cfg *config.DungeonConfig, x, y float64, facing types.Direction) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("dungeon config cannot be nil")
	}

	dx, dy := facing.Delta()
	speed := cfg.Combat.ArrowSpeed

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{
		VX: float64(dx) * speed,
		VY: float64(dy) * speed,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Sizes.Arrow,
		Height: cfg.Sizes.Arrow,
	})
	em.AddComponent(id, &components.ArrowComponent{Angle: ArrowAngle(facing)})
	return id, nil
}

// NewFireball 创建恶魔发射的火球，瞄准 (targetX, targetY)
// 目标与起点重合时火球静止
func NewFireball(em *ecs.EntityManager, cfg *config.DungeonConfig, x, y, targetX, targetY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("dungeon config cannot be nil")
	}

	vx, vy := 0.0, 0.0
	angle := 0.0
	if targetX != x || targetY != y {
		rad := math.Atan2(targetY-y, targetX-x)
		vx = math.Cos(rad) * cfg.Combat.FireballSpeed
		vy = math.Sin(rad) * cfg.Combat.FireballSpeed
		angle = rad * 180 / math.Pi
	}

	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Sizes.Fireball,
		Height: cfg.Sizes.Fireball,
	})
	em.AddComponent(id, &components.FireballComponent{Angle: angle})
	return id, nil
}
