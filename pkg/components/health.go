package components

// HealthComponent 存储实体的生命值信息
// 用于玩家和恶魔，生命值始终限制在 [0, MaxHealth]
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Damage 扣除生命值，最低为 0
func (h *HealthComponent) Damage(amount int) {
	h.set(h.CurrentHealth - amount)
}

// Heal 恢复生命值，最高为 MaxHealth
func (h *HealthComponent) Heal(amount int) {
	h.set(h.CurrentHealth + amount)
}

// Kill 生命值直接归零
func (h *HealthComponent) Kill() {
	h.CurrentHealth = 0
}

// IsDead 生命值 <= 0 是唯一的死亡条件
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}

func (h *HealthComponent) set(value int) {
	if value < 0 {
		value = 0
	}
	if value > h.MaxHealth {
		value = h.MaxHealth
	}
	h.CurrentHealth = value
}
