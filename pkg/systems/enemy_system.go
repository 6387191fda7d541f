package systems

import (
	"log"
	"math"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/entities"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/types"
)

// EnemySystem 恶魔 AI：侦测玩家、朝向、定时发射火球、死亡流程
type EnemySystem struct {
	world *World
}

// NewEnemySystem 创建恶魔系统
func NewEnemySystem(w *World) *EnemySystem {
	return &EnemySystem{world: w}
}

// Update 更新所有恶魔一帧
func (s *EnemySystem) Update() {
	em := s.world.EM
	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		if hp.IsDead() {
			startDying(ec, s.world.State.Tick)
		}
		if ec.Dying {
			s.updateDeath(id, ec, pos)
			continue
		}

		s.updateAggression(ec, pos)
	}
}

// updateDeath 死亡动画两个阶段，结束时移除恶魔并掉落一枚金币
func (s *EnemySystem) updateDeath(id ecs.EntityID, ec *components.EnemyComponent, pos *components.PositionComponent) {
	cfg := s.world.Config.Enemy
	elapsed := s.world.State.Tick - ec.DeathTick

	switch {
	case elapsed < cfg.DeathPhaseTicks:
		ec.State = components.EnemyDying1
	case elapsed < cfg.DeathTicks:
		ec.State = components.EnemyDying2
	default:
		s.world.EM.DestroyEntity(id)
		if _, err := entities.NewPickup(s.world.EM, s.world.Config, types.PickupCoin, pos.X, pos.Y, s.world.State.Tick); err != nil {
			log.Printf("[EnemySystem] Warning: failed to drop coin: %v", err)
		}
	}
}

// updateAggression 玩家进入侦测范围后低吼一次，转向玩家并按冷却发射火球
func (s *EnemySystem) updateAggression(ec *components.EnemyComponent, pos *components.PositionComponent) {
	em := s.world.EM
	target, ok := ecs.GetComponent[*components.PositionComponent](em, ec.Target)
	if !ok {
		return
	}

	dx := target.X - pos.X
	dy := target.Y - pos.Y
	if math.Hypot(dx, dy) >= s.world.Config.Enemy.DetectionRadius {
		ec.Detected = false
		return
	}

	if !ec.Detected {
		ec.Detected = true
		s.world.play(game.SoundGrowl)
	}

	// 贴图默认朝上
	ec.Angle = math.Atan2(dy, dx)*180/math.Pi - 90

	tick := s.world.State.Tick
	if tick <= ec.NextShotTick {
		return
	}

	cfg := s.world.Config.Enemy
	ec.NextShotTick = tick + cfg.ShotCooldownMin + s.world.Rand.Intn(cfg.ShotCooldownMax-cfg.ShotCooldownMin+1)

	pc, ok := ecs.GetComponent[*components.PlayerComponent](em, ec.Target)
	if !ok || !pc.Alive {
		return
	}
	s.world.play(game.SoundGulp)
	if _, err := entities.NewFireball(em, s.world.Config, pos.X, pos.Y, target.X, target.Y); err != nil {
		log.Printf("[EnemySystem] Warning: failed to spawn fireball: %v", err)
	}
}
