package systems

import (
	"testing"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/entities"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/types"
)

// TestPickupEligibilityBoundary 在 T 生成的掉落物在 T+10 帧不可拾取，T+11 帧可拾取
func TestPickupEligibilityBoundary(t *testing.T) {
	w, _ := newTestWorld(t)
	cs := NewCollisionSystem(w)
	spawnChest(t, w, 100, 100) // 与玩家重叠

	w.State.Tick = 100
	cs.Update()
	if n := countWith[*components.PickupComponent](w.EM); n != 1 {
		t.Fatalf("expected chest to drop 1 pickup, got %d", n)
	}

	for tick := 101; tick <= 110; tick++ {
		w.State.Tick = tick
		cs.Update()
		if n := countWith[*components.PickupComponent](w.EM); n != 1 {
			t.Fatalf("tick %d: pickup collected too early", tick)
		}
	}

	w.State.Tick = 111
	cs.Update()
	if n := countWith[*components.PickupComponent](w.EM); n != 0 {
		t.Errorf("tick 111: pickup should be collected, %d remain", n)
	}
}

func TestPickupEffects(t *testing.T) {
	tests := []struct {
		name       string
		kind       types.PickupKind
		health     int
		wantHealth int
		wantAmmo   int
		wantScore  int
		wantSound  string
	}{
		{"药水不超过上限", types.PickupPotion, 95, 100, 5, 0, game.SoundGulp},
		{"药水正常回复", types.PickupPotion, 50, 60, 5, 0, game.SoundGulp},
		{"箭袋", types.PickupAmmo, 100, 100, 8, 0, game.SoundAmmoPickup},
		{"金币", types.PickupCoin, 100, 100, 5, 1, game.SoundCoinPickup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, sound := newTestWorld(t)
			p := mustPlayer(t, w)
			p.hp.CurrentHealth = tt.health

			w.State.Tick = 5
			if _, err := entities.NewPickup(w.EM, w.Config, tt.kind, 100, 100, 4); err != nil {
				t.Fatal(err)
			}
			NewCollisionSystem(w).Update()

			if p.hp.CurrentHealth != tt.wantHealth {
				t.Errorf("health = %d, want %d", p.hp.CurrentHealth, tt.wantHealth)
			}
			if p.pc.Ammo != tt.wantAmmo {
				t.Errorf("ammo = %d, want %d", p.pc.Ammo, tt.wantAmmo)
			}
			if w.State.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", w.State.Score, tt.wantScore)
			}
			if sound.count(tt.wantSound) != 1 {
				t.Errorf("sound %s played %d times", tt.wantSound, sound.count(tt.wantSound))
			}
		})
	}
}

// TestFatalEnemyContact 碰到存活恶魔时生命值直接归零
func TestFatalEnemyContact(t *testing.T) {
	for _, health := range []int{100, 37, 1} {
		w, _ := newTestWorld(t)
		p := mustPlayer(t, w)
		p.hp.CurrentHealth = health
		enemy := spawnEnemy(t, w, 110, 100)

		NewCollisionSystem(w).Update()

		if p.hp.CurrentHealth != 0 {
			t.Errorf("health %d: after contact got %d, want 0", health, p.hp.CurrentHealth)
		}
		ec, _ := ecs.GetComponent[*components.EnemyComponent](w.EM, enemy)
		if ec.State != components.EnemyLunge {
			t.Errorf("enemy state = %v, want lunge", ec.State)
		}
	}
}

func TestDyingEnemyIsHarmless(t *testing.T) {
	w, _ := newTestWorld(t)
	enemy := spawnEnemy(t, w, 110, 100)
	w.killEnemy(enemy)

	NewCollisionSystem(w).Update()

	if p := mustPlayer(t, w); p.hp.CurrentHealth != 100 {
		t.Errorf("dying enemy should not hurt the player, health = %d", p.hp.CurrentHealth)
	}
}

func TestFireballHitsPlayer(t *testing.T) {
	w, sound := newTestWorld(t)
	fb := spawnFireball(t, w, 105, 100, -4, 0, false)

	NewCollisionSystem(w).Update()

	p := mustPlayer(t, w)
	if p.hp.CurrentHealth != 75 {
		t.Errorf("health = %d, want 75", p.hp.CurrentHealth)
	}
	if w.EM.IsAlive(fb) {
		t.Error("fireball should be destroyed")
	}
	pain := 0
	for _, id := range game.PainSounds {
		pain += sound.count(id)
	}
	if pain != 1 {
		t.Errorf("pain cues = %d, want 1", pain)
	}
}

func TestFireballDamageClampsAtZero(t *testing.T) {
	w, _ := newTestWorld(t)
	p := mustPlayer(t, w)
	p.hp.CurrentHealth = 10
	spawnFireball(t, w, 100, 100, 1, 0, false)

	NewCollisionSystem(w).Update()

	if p.hp.CurrentHealth != 0 {
		t.Errorf("health = %d, want 0", p.hp.CurrentHealth)
	}
}

func TestReflectedFireballKillsEnemy(t *testing.T) {
	w, sound := newTestWorld(t)
	enemy := spawnEnemy(t, w, 300, 300)
	fb := spawnFireball(t, w, 305, 300, 4, 0, true)

	NewCollisionSystem(w).Update()

	if w.EM.IsAlive(fb) {
		t.Error("reflected fireball should be destroyed on hit")
	}
	hp, _ := ecs.GetComponent[*components.HealthComponent](w.EM, enemy)
	ec, _ := ecs.GetComponent[*components.EnemyComponent](w.EM, enemy)
	if hp.CurrentHealth != 0 || !ec.Dying {
		t.Errorf("enemy should be dying: health=%d dying=%v", hp.CurrentHealth, ec.Dying)
	}
	if sound.count(game.SoundDemonDie) != 1 {
		t.Error("expected demon_die cue")
	}
}

// TestReflectedFireballIgnoresPlayer 反弹后的火球不再伤害玩家
func TestReflectedFireballIgnoresPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	fb := spawnFireball(t, w, 100, 100, 4, 0, true)

	NewCollisionSystem(w).Update()

	if p := mustPlayer(t, w); p.hp.CurrentHealth != 100 {
		t.Errorf("health = %d, want 100", p.hp.CurrentHealth)
	}
	if !w.EM.IsAlive(fb) {
		t.Error("reflected fireball should pass through the player")
	}
}

func TestFireballHitsWallFirst(t *testing.T) {
	w, _ := newTestWorld(t)
	spawnWall(t, w, 300, 300)
	chest := spawnChest(t, w, 310, 300)
	fb := spawnFireball(t, w, 295, 300, 4, 0, false)

	NewCollisionSystem(w).Update()

	if w.EM.IsAlive(fb) {
		t.Error("fireball should be destroyed by the wall")
	}
	c, _ := ecs.GetComponent[*components.ChestComponent](w.EM, chest)
	if c.Opened {
		t.Error("destroyed fireball should not reach later checks")
	}
}

func TestFireballOpensChest(t *testing.T) {
	w, _ := newTestWorld(t)
	chest := spawnChest(t, w, 300, 300)
	fb := spawnFireball(t, w, 300, 300, 4, 0, false)

	NewCollisionSystem(w).Update()

	c, _ := ecs.GetComponent[*components.ChestComponent](w.EM, chest)
	if !c.Opened || w.EM.IsAlive(fb) {
		t.Errorf("opened=%v fireballAlive=%v", c.Opened, w.EM.IsAlive(fb))
	}
}

func TestArrowHitsWallLeavesDecal(t *testing.T) {
	w, sound := newTestWorld(t)
	spawnWall(t, w, 300, 300)
	arrow, err := entities.NewArrow(w.EM, w.Config, 282, 300, types.DirectionRight)
	if err != nil {
		t.Fatal(err)
	}

	NewCollisionSystem(w).Update()

	if w.EM.IsAlive(arrow) {
		t.Error("arrow should be destroyed")
	}
	decals := ecs.GetEntitiesWith1[*components.DecalComponent](w.EM)
	if len(decals) != 1 {
		t.Fatalf("decals = %d, want 1", len(decals))
	}
	d, _ := ecs.GetComponent[*components.DecalComponent](w.EM, decals[0])
	if d.Angle != -90 {
		t.Errorf("decal angle = %v, want -90", d.Angle)
	}
	if sound.count(game.SoundArrowHit) != 1 {
		t.Error("expected arrow_hit cue")
	}
}

func TestArrowKillsEnemy(t *testing.T) {
	w, _ := newTestWorld(t)
	enemy := spawnEnemy(t, w, 300, 300)
	arrow, _ := entities.NewArrow(w.EM, w.Config, 290, 300, types.DirectionRight)

	NewCollisionSystem(w).Update()

	ec, _ := ecs.GetComponent[*components.EnemyComponent](w.EM, enemy)
	if !ec.Dying || w.EM.IsAlive(arrow) {
		t.Errorf("dying=%v arrowAlive=%v", ec.Dying, w.EM.IsAlive(arrow))
	}
}

// TestArrowPassesOpenedChest 已打开的宝箱不阻挡箭矢
func TestArrowPassesOpenedChest(t *testing.T) {
	w, _ := newTestWorld(t)
	chest := spawnChest(t, w, 300, 300)
	c, _ := ecs.GetComponent[*components.ChestComponent](w.EM, chest)
	c.Opened = true
	arrow, _ := entities.NewArrow(w.EM, w.Config, 300, 300, types.DirectionRight)

	NewCollisionSystem(w).Update()

	if !w.EM.IsAlive(arrow) {
		t.Error("arrow should fly through an opened chest")
	}
	if n := countWith[*components.PickupComponent](w.EM); n != 0 {
		t.Errorf("opened chest dropped %d more pickups", n)
	}
}

func TestArrowOpensClosedChest(t *testing.T) {
	w, _ := newTestWorld(t)
	chest := spawnChest(t, w, 300, 300)
	arrow, _ := entities.NewArrow(w.EM, w.Config, 300, 300, types.DirectionUp)

	NewCollisionSystem(w).Update()

	c, _ := ecs.GetComponent[*components.ChestComponent](w.EM, chest)
	if !c.Opened || w.EM.IsAlive(arrow) {
		t.Errorf("opened=%v arrowAlive=%v", c.Opened, w.EM.IsAlive(arrow))
	}
}
