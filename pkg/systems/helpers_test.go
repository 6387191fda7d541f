package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/dungeon/pkg/components"
	"github.com/decker502/dungeon/pkg/config"
	"github.com/decker502/dungeon/pkg/ecs"
	"github.com/decker502/dungeon/pkg/entities"
	"github.com/decker502/dungeon/pkg/game"
	"github.com/decker502/dungeon/pkg/types"
)

// recordingSound 记录播放过的音效
type recordingSound struct {
	played []string
}

func (r *recordingSound) PlaySound(soundID string) bool {
	r.played = append(r.played, soundID)
	return true
}

func (r *recordingSound) count(soundID string) int {
	n := 0
	for _, id := range r.played {
		if id == soundID {
			n++
		}
	}
	return n
}

// memStore 内存最高分存储
type memStore struct {
	saved []int
}

func (m *memStore) Load() (int, error) {
	if len(m.saved) == 0 {
		return 0, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *memStore) Save(score int) error {
	m.saved = append(m.saved, score)
	return nil
}

// newTestWorld 创建只有一个玩家的空房间，玩家位于 (100, 100) 朝右
func newTestWorld(t *testing.T) (*World, *recordingSound) {
	t.Helper()
	cfg := config.DefaultDungeonConfig()
	em := ecs.NewEntityManager()
	sound := &recordingSound{}
	w := &World{
		EM:     em,
		State:  game.NewGameState(0),
		Config: cfg,
		Rand:   rand.New(rand.NewSource(1)),
		Sound:  sound,
	}
	id, err := entities.NewPlayer(em, cfg, 100, 100, cfg.Player.MaxHealth, cfg.Player.StartAmmo)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}
	w.Player = id
	return w, sound
}

func mustPlayer(t *testing.T, w *World) playerView {
	t.Helper()
	p, ok := w.player()
	if !ok {
		t.Fatal("player missing")
	}
	return p
}

func spawnEnemy(t *testing.T, w *World, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(w.EM, w.Config, x, y, w.Player)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func spawnFireball(t *testing.T, w *World, x, y, vx, vy float64, reflected bool) ecs.EntityID {
	t.Helper()
	id, err := entities.NewFireball(w.EM, w.Config, x, y, x+vx, y+vy)
	if err != nil {
		t.Fatal(err)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](w.EM, id)
	vel.VX, vel.VY = vx, vy
	fb, _ := ecs.GetComponent[*components.FireballComponent](w.EM, id)
	fb.Reflected = reflected
	return id
}

func spawnWall(t *testing.T, w *World, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewWall(w.EM, w.Config, x, y, 0, types.DoorNone)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func spawnChest(t *testing.T, w *World, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewChest(w.EM, w.Config, x, y)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func countWith[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
