package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path"
	"strings"
)

// ParseManifest 解析资源清单
//
// 清单是逐行的相对路径列表，空行和以 # 开头的行会被忽略。
//
// 示例:
//
//	# 墙体贴图
//	images/wall_1.png
//	images/wall_2.png
func ParseManifest(data []byte) ([]string, error) {
	entries := make([]string, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan manifest: %w", err)
	}
	return entries, nil
}

// LoadManifest 从磁盘读取并解析资源清单
func LoadManifest(manifestPath string) ([]string, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", manifestPath, err)
	}
	return ParseManifest(data)
}

// CueName 返回清单条目对应的资源名（文件名去掉扩展名）
//
// 示例:
//
//	CueName("sounds/chest_open.ogg") = "chest_open"
func CueName(entry string) string {
	base := path.Base(strings.ReplaceAll(entry, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}
