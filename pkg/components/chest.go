package components

// ChestComponent 宝箱状态
// Opened 只会从 false 变为 true 一次
type ChestComponent struct {
	Opened bool
}
