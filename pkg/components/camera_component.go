package components

// CameraComponent 视口跟随参数
// 视口是 ScrollWidth × ScrollHeight 的窗口，玩家离任一边缘小于 Margin 时滚动
type CameraComponent struct {
	ScrollWidth  float64
	ScrollHeight float64
	Margin       float64
}
