//go:build !mobile

package utils

import "os"

// IsMobile 桌面端返回 false
// 设置 DUNGEON_MOBILE_EMULATE=1 可以在桌面上模拟移动端行为
func IsMobile() bool {
	return os.Getenv("DUNGEON_MOBILE_EMULATE") == "1"
}
