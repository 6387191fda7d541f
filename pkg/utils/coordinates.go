package utils

import "math"

// 坐标系约定
//
// 世界坐标：Y 轴向上，格子 (x, y) 的中心位于 (x*cellSize, y*cellSize)。
// 屏幕坐标：Y 轴向下，原点为视口左上角。
//
// 视口由左下角 (viewLeft, viewBottom) 和高度 viewHeight 描述，
// 与 GameState.ViewLeft/ViewBottom 一致。

// WorldToCell 返回世界坐标所在的格子
// 实体以格子中心为锚点，因此四舍五入而不是向下取整
func WorldToCell(x, y, cellSize float64) (col, row int) {
	return int(math.Floor(x/cellSize + 0.5)), int(math.Floor(y/cellSize + 0.5))
}

// WorldToScreen 世界坐标转换为屏幕坐标
//
// 计算公式：
//
//	screenX = worldX - viewLeft
//	screenY = viewHeight - (worldY - viewBottom)
func WorldToScreen(worldX, worldY, viewLeft, viewBottom, viewHeight float64) (screenX, screenY float64) {
	return worldX - viewLeft, viewHeight - (worldY - viewBottom)
}

// ScreenToWorld WorldToScreen 的逆变换
func ScreenToWorld(screenX, screenY, viewLeft, viewBottom, viewHeight float64) (worldX, worldY float64) {
	return screenX + viewLeft, viewBottom + viewHeight - screenY
}
