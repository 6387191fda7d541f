package systems

import (
	"log"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/entities"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/types"
)

// CollisionSystem 每帧的碰撞结算
//
// 结算顺序固定：火球、箭矢、玩家与恶魔、玩家与宝箱、玩家与拾取物。
// 结算过程中的销毁、开箱、扣血对同一帧后续检查立即可见；
// 被销毁的投射物不再参与后面的检查。
type CollisionSystem struct {
	world *World
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(w *World) *CollisionSystem {
	return &CollisionSystem{world: w}
}

// Update 结算一帧内的全部碰撞
func (s *CollisionSystem) Update() {
	s.resolveFireballs()
	s.resolveArrows()

	p, ok := s.world.player()
	if !ok {
		return
	}
	s.resolvePlayerEnemies(p)
	s.resolvePlayerChests(p)
	s.resolvePickups(p)
}

// hitsWall box 是否与任意墙体（含门）接触
func (s *CollisionSystem) hitsWall(box components.Box) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.WallComponent](s.world.EM) {
		if wb, ok := s.world.boxOf(id); ok && box.Overlaps(wb) {
			return true
		}
	}
	return false
}

// hitClosedChest 投射物打开第一个接触到的未开宝箱；已开的宝箱不阻挡投射物
func (s *CollisionSystem) hitClosedChest(box components.Box) bool {
	em := s.world.EM
	for _, id := range ecs.GetEntitiesWith1[*components.ChestComponent](em) {
		chest, _ := ecs.GetComponent[*components.ChestComponent](em, id)
		if chest.Opened {
			continue
		}
		if cb, ok := s.world.boxOf(id); ok && box.Overlaps(cb) {
			OpenChest(s.world, id)
			return true
		}
	}
	return false
}

// hitLivingEnemy 杀死第一个接触到的存活恶魔
func (s *CollisionSystem) hitLivingEnemy(box components.Box) bool {
	em := s.world.EM
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if !enemyAlive(hp, ec) {
			continue
		}
		if eb, ok := s.world.boxOf(id); ok && box.Overlaps(eb) {
			s.world.killEnemy(id)
			s.world.play(game.SoundDemonDie)
			return true
		}
	}
	return false
}

func (s *CollisionSystem) resolveFireballs() {
	em := s.world.EM
	for _, id := range ecs.GetEntitiesWith1[*components.FireballComponent](em) {
		fb, _ := ecs.GetComponent[*components.FireballComponent](em, id)
		box, ok := s.world.boxOf(id)
		if !ok {
			continue
		}

		if s.hitsWall(box) {
			em.DestroyEntity(id)
			continue
		}

		if s.hitClosedChest(box) {
			em.DestroyEntity(id)
			continue
		}

		if !fb.Reflected {
			if p, ok := s.world.player(); ok && box.Overlaps(p.box()) {
				p.hp.Damage(s.world.Config.Combat.FireballDamage)
				s.world.play(game.PainSounds[s.world.Rand.Intn(len(game.PainSounds))])
				em.DestroyEntity(id)
			}
			continue
		}

		if s.hitLivingEnemy(box) {
			em.DestroyEntity(id)
		}
	}
}

func (s *CollisionSystem) resolveArrows() {
	em := s.world.EM
	for _, id := range ecs.GetEntitiesWith1[*components.ArrowComponent](em) {
		arrow, _ := ecs.GetComponent[*components.ArrowComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		box, ok := s.world.boxOf(id)
		if !ok {
			continue
		}

		// 箭插在墙上，留下装饰
		if s.hitsWall(box) {
			if _, err := entities.NewArrowDecal(em, pos.X, pos.Y, arrow.Angle); err != nil {
				log.Printf("[CollisionSystem] Warning: failed to spawn arrow decal: %v", err)
			}
			em.DestroyEntity(id)
			s.world.play(game.SoundArrowHit)
			continue
		}

		if s.hitLivingEnemy(box) {
			em.DestroyEntity(id)
			continue
		}

		if s.hitClosedChest(box) {
			em.DestroyEntity(id)
		}
	}
}

// resolvePlayerEnemies 碰到存活恶魔即死，恶魔显示扑击姿态
func (s *CollisionSystem) resolvePlayerEnemies(p playerView) {
	em := s.world.EM
	pbox := p.box()
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.HealthComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		if !enemyAlive(hp, ec) {
			continue
		}
		if eb, ok := s.world.boxOf(id); ok && pbox.Overlaps(eb) {
			p.hp.Kill()
			ec.State = components.EnemyLunge
		}
	}
}

func (s *CollisionSystem) resolvePlayerChests(p playerView) {
	em := s.world.EM
	pbox := p.box()
	for _, id := range ecs.GetEntitiesWith1[*components.ChestComponent](em) {
		if cb, ok := s.world.boxOf(id); ok && pbox.Overlaps(cb) {
			OpenChest(s.world, id)
		}
	}
}

// resolvePickups 拾取物只有在 EligibleTick 之后才生效，之前的接触直接忽略
func (s *CollisionSystem) resolvePickups(p playerView) {
	em := s.world.EM
	cfg := s.world.Config.Pickup
	tick := s.world.State.Tick
	pbox := p.box()

	for _, id := range ecs.GetEntitiesWith1[*components.PickupComponent](em) {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](em, id)
		if !pickup.Collectible(tick) {
			continue
		}
		if b, ok := s.world.boxOf(id); !ok || !pbox.Overlaps(b) {
			continue
		}

		switch pickup.Kind {
		case types.PickupAmmo:
			p.pc.Ammo += cfg.AmmoGrant
			s.world.play(game.SoundAmmoPickup)
		case types.PickupCoin:
			s.world.State.AddScore(cfg.CoinValue)
			s.world.play(game.SoundCoinPickup)
		case types.PickupPotion:
			p.hp.Heal(cfg.PotionHeal)
			s.world.play(game.SoundGulp)
		}
		em.DestroyEntity(id)
	}
}
