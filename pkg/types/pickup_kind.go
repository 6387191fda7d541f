package types

// PickupKind 拾取物种类
type PickupKind int

const (
	PickupAmmo   PickupKind = iota // 箭袋：+3 弹药
	PickupPotion                   // 药水：+10 生命
	PickupCoin                     // 金币：+1 分
)

// String 返回拾取物名称
func (k PickupKind) String() string {
	switch k {
	case PickupAmmo:
		return "ammo"
	case PickupPotion:
		return "potion"
	case PickupCoin:
		return "coin"
	}
	return "unknown"
}

// DoorState 门的外观状态（仅影响贴图）
type DoorState int

const (
	DoorNone   DoorState = iota // 普通墙
	DoorOpen                    // 出口门（打开）
	DoorClosed                  // 入口门（关闭）
)
