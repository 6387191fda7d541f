package utils

import "testing"

func TestWorldToCell(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantCol int
		wantRow int
	}{
		{name: "格子中心", x: 32, y: 160, wantCol: 1, wantRow: 5},
		{name: "偏左下不足半格", x: 17, y: 145, wantCol: 1, wantRow: 5},
		{name: "恰好半格进位", x: 48, y: 176, wantCol: 2, wantRow: 6},
		{name: "原点", x: 0, y: 0, wantCol: 0, wantRow: 0},
		{name: "负坐标", x: -20, y: -40, wantCol: -1, wantRow: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := WorldToCell(tt.x, tt.y, 32)
			if col != tt.wantCol || row != tt.wantRow {
				t.Errorf("WorldToCell(%.0f, %.0f) = (%d, %d), want (%d, %d)",
					tt.x, tt.y, col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name                     string
		worldX, worldY           float64
		viewLeft, viewBottom     float64
		wantScreenX, wantScreenY float64
	}{
		{name: "视口在原点", worldX: 100, worldY: 100, wantScreenX: 100, wantScreenY: 284},
		{name: "视口左下角映射到屏幕左下角", worldX: 50, worldY: 70, viewLeft: 50, viewBottom: 70, wantScreenX: 0, wantScreenY: 384},
		{name: "视口顶部映射到屏幕第 0 行", worldX: 50, worldY: 454, viewLeft: 50, viewBottom: 70, wantScreenX: 0, wantScreenY: 0},
		{name: "负视口", worldX: 0, worldY: 0, viewLeft: -114, viewBottom: -92, wantScreenX: 114, wantScreenY: 292},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.worldX, tt.worldY, tt.viewLeft, tt.viewBottom, 384)
			if sx != tt.wantScreenX || sy != tt.wantScreenY {
				t.Errorf("WorldToScreen = (%.1f, %.1f), want (%.1f, %.1f)", sx, sy, tt.wantScreenX, tt.wantScreenY)
			}

			wx, wy := ScreenToWorld(sx, sy, tt.viewLeft, tt.viewBottom, 384)
			if wx != tt.worldX || wy != tt.worldY {
				t.Errorf("ScreenToWorld round trip = (%.1f, %.1f), want (%.1f, %.1f)", wx, wy, tt.worldX, tt.worldY)
			}
		})
	}
}
