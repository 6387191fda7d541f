//go:build !android

package utils

// EnsureStorageDir 桌面平台上 gdata 会自己创建数据目录
func EnsureStorageDir() error {
	return nil
}
