// Package types 定义共享的基础类型
package types

// Direction 定义角色朝向和移动方向
type Direction int

const (
	DirectionRight Direction = iota // 向右（初始朝向）
	DirectionLeft                   // 向左
	DirectionUp                     // 向上
	DirectionDown                   // 向下
)

// String 返回方向名称，用作精灵图键名的一部分
func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	}
	return "unknown"
}

// IsHorizontal 方向是否在水平轴上
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Delta 返回单位步长（世界坐标系，Y 轴向上）
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionRight:
		return 1, 0
	case DirectionLeft:
		return -1, 0
	case DirectionUp:
		return 0, 1
	case DirectionDown:
		return 0, -1
	}
	return 0, 0
}

// Perpendicular 返回与 d 垂直的两个方向
// 水平方向返回 (上, 下)，垂直方向返回 (左, 右)
func (d Direction) Perpendicular() (Direction, Direction) {
	if d.IsHorizontal() {
		return DirectionUp, DirectionDown
	}
	return DirectionLeft, DirectionRight
}
