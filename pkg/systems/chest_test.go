package systems

import (
	"testing"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/game"
)

// TestOpenChestIdempotent 第二次开箱是无操作
func TestOpenChestIdempotent(t *testing.T) {
	w, sound := newTestWorld(t)
	chest := spawnChest(t, w, 300, 300)
	w.State.Tick = 42

	if !OpenChest(w, chest) {
		t.Fatal("first open should succeed")
	}
	if OpenChest(w, chest) {
		t.Error("second open should be a no-op")
	}

	if n := countWith[*components.PickupComponent](w.EM); n != 1 {
		t.Errorf("pickups = %d, want exactly 1", n)
	}
	if sound.count(game.SoundChestOpen) != 1 {
		t.Errorf("chest_open played %d times, want 1", sound.count(game.SoundChestOpen))
	}

	c, _ := ecs.GetComponent[*components.ChestComponent](w.EM, chest)
	if !c.Opened {
		t.Error("chest should stay opened")
	}

	pickup := ecs.GetEntitiesWith1[*components.PickupComponent](w.EM)[0]
	pc, _ := ecs.GetComponent[*components.PickupComponent](w.EM, pickup)
	if pc.EligibleTick != 52 {
		t.Errorf("EligibleTick = %d, want 52", pc.EligibleTick)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EM, pickup)
	if pos.X != 300 || pos.Y != 300 {
		t.Errorf("pickup at (%v, %v), want chest position", pos.X, pos.Y)
	}
}

// TestOpenChestDropsBothKinds 掉落物是箭袋或药水，两种都会出现
func TestOpenChestDropsBothKinds(t *testing.T) {
	w, _ := newTestWorld(t)
	seen := map[string]bool{}
	for i := 0; i < 40; i++ {
		OpenChest(w, spawnChest(t, w, float64(400+i*40), 400))
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PickupComponent](w.EM) {
		pc, _ := ecs.GetComponent[*components.PickupComponent](w.EM, id)
		seen[pc.Kind.String()] = true
	}
	if !seen["ammo"] || !seen["potion"] || seen["coin"] {
		t.Errorf("unexpected drop kinds: %v", seen)
	}
}

func TestOpenChestUnknownEntity(t *testing.T) {
	w, _ := newTestWorld(t)
	if OpenChest(w, w.Player) {
		t.Error("opening a non-chest should fail")
	}
}
