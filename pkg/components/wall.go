package components

import "github.com/decker502/dungeon/pkg/types"

// WallComponent 静态墙体（包括入口门和出口门）
type WallComponent struct {
	Texture int             // 墙体贴图索引，仅影响外观
	Door    types.DoorState // 门的状态，普通墙为 DoorNone
}

// DecalComponent 不参与碰撞的装饰物（插在墙上的箭）
type DecalComponent struct {
	Angle float64
}
