package systems

import (
	"log"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/entities"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/types"
)

// PlayerSystem 玩家状态与动作：死亡判定、移动指令、射箭、挥刀
type PlayerSystem struct {
	world *World
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(w *World) *PlayerSystem {
	return &PlayerSystem{world: w}
}

// Update 死亡判定和死亡滑行
// 生命值 <= 0 时玩家死亡，速度每帧按 DeathFriction 衰减到 0，死亡音效只播放一次
func (s *PlayerSystem) Update() {
	p, ok := s.world.player()
	if !ok {
		return
	}

	if p.hp.IsDead() {
		p.pc.Alive = false
		friction := s.world.Config.Player.DeathFriction
		p.vel.VX = applyFriction(p.vel.VX, friction)
		p.vel.VY = applyFriction(p.vel.VY, friction)
	}

	if !p.pc.Alive && !p.pc.DeathCuePlayed {
		p.pc.DeathCuePlayed = true
		s.world.play(game.SoundCharDie)
	}
}

// applyFriction 速度向 0 衰减，足够小时直接归零
func applyFriction(v, friction float64) float64 {
	if v > 0 {
		v -= friction
	}
	if v < 0 {
		v += friction
	}
	if v > -2*friction && v < 2*friction {
		v = 0
	}
	return v
}

// Move 按方向移动并转向，死亡后忽略
func (s *PlayerSystem) Move(dir types.Direction) {
	p, ok := s.world.player()
	if !ok || !p.pc.Alive {
		return
	}

	speed := s.world.Config.Player.MoveSpeed
	dx, dy := dir.Delta()
	if dir.IsHorizontal() {
		p.vel.VX = float64(dx) * speed
	} else {
		p.vel.VY = float64(dy) * speed
	}
	p.pc.Facing = dir
}

// Stop 松开方向键：只有当前速度正朝该方向时才归零
func (s *PlayerSystem) Stop(dir types.Direction) {
	p, ok := s.world.player()
	if !ok {
		return
	}

	switch dir {
	case types.DirectionUp:
		if p.vel.VY > 0 {
			p.vel.VY = 0
		}
	case types.DirectionDown:
		if p.vel.VY < 0 {
			p.vel.VY = 0
		}
	case types.DirectionRight:
		if p.vel.VX > 0 {
			p.vel.VX = 0
		}
	case types.DirectionLeft:
		if p.vel.VX < 0 {
			p.vel.VX = 0
		}
	}
}

// Shoot 主攻击：有箭时射箭，没箭时改为挥刀
func (s *PlayerSystem) Shoot() {
	p, ok := s.world.player()
	if !ok || !p.pc.Alive {
		return
	}
	if p.pc.Ammo <= 0 {
		s.Stab()
		return
	}

	p.pc.Ammo--
	s.world.play(game.SoundBowShoot)
	if _, err := entities.NewArrow(s.world.EM, s.world.Config, p.pos.X, p.pos.Y, p.pc.Facing); err != nil {
		log.Printf("[PlayerSystem] Warning: failed to spawn arrow: %v", err)
	}
}

// Stab 挥刀
//
// 冷却期内连按会把冷却再延长 KnifePenalty 帧；冷却结束后挥刀，
// 在朝向前方生成攻击框：框内的恶魔被杀死，框内的火球被反弹。
func (s *PlayerSystem) Stab() {
	p, ok := s.world.player()
	if !ok || !p.pc.Alive {
		return
	}

	tick := s.world.State.Tick
	combat := s.world.Config.Combat

	if tick < p.pc.KnifeRate {
		p.pc.KnifeRate += combat.KnifePenalty
	}
	if tick <= p.pc.KnifeRate {
		return
	}

	p.pc.KnifeDelay = tick + combat.KnifeCooldown
	p.pc.KnifeRate = tick + combat.KnifeCooldown
	s.world.play(game.SoundKnifeSwing)

	p.pc.HitBox = knifeBox(p.pos.X, p.pos.Y, p.pc.Facing, combat.KnifeReach, combat.KnifeHalfWidth)
	s.resolveStab(p.pc.HitBox)
}

// knifeBox 朝向前方的攻击框
func knifeBox(x, y float64, facing types.Direction, reach, halfWidth float64) components.Box {
	switch facing {
	case types.DirectionLeft:
		return components.Box{Left: x - reach, Right: x, Top: y + halfWidth, Bottom: y - halfWidth}
	case types.DirectionUp:
		return components.Box{Left: x - halfWidth, Right: x + halfWidth, Top: y + reach, Bottom: y}
	case types.DirectionDown:
		return components.Box{Left: x - halfWidth, Right: x + halfWidth, Top: y, Bottom: y - reach}
	default:
		return components.Box{Left: x, Right: x + reach, Top: y + halfWidth, Bottom: y - halfWidth}
	}
}

// resolveStab 中心点严格落在攻击框内的恶魔和火球
func (s *PlayerSystem) resolveStab(box components.Box) {
	em := s.world.EM

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.HealthComponent, *components.PositionComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if !enemyAlive(hp, ec) || !box.ContainsPoint(pos.X, pos.Y) {
			continue
		}
		s.world.killEnemy(id)
		s.world.play(game.SoundKnifeHit)
		s.world.play(game.SoundDemonDie)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.FireballComponent, *components.VelocityComponent, *components.PositionComponent](em) {
		fb, _ := ecs.GetComponent[*components.FireballComponent](em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if !box.ContainsPoint(pos.X, pos.Y) {
			continue
		}
		vel.VX = -vel.VX
		vel.VY = -vel.VY
		fb.Reflected = true
		s.world.play(game.SoundKnifeHit)
	}
}
