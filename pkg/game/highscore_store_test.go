package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileHighScoreStore(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    int
		wantErr bool
	}{
		{"文件不存在", nil, 0, false},
		{"空文件", strPtr(""), 0, false},
		{"正常分数", strPtr("42"), 42, false},
		{"带换行", strPtr("17\n"), 17, false},
		{"多行取最后一行", strPtr("3\n8\n"), 8, false},
		{"损坏内容", strPtr("abc"), 0, true},
		{"负数", strPtr("-5"), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.txt")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			store := NewFileHighScoreStore(path)
			got, err := store.Load()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
			if LoadHighScore(store) != tt.want {
				t.Errorf("LoadHighScore() should fall back to %d", tt.want)
			}
		})
	}
}

// TestFileHighScoreStoreOverwrite 保存是整体覆盖而不是追加
func TestFileHighScoreStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	store := NewFileHighScoreStore(path)

	if err := store.Save(120); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.Save(7); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "7" {
		t.Errorf("file content = %q, want %q", data, "7")
	}
}

func TestFileHighScoreStoreUnwritable(t *testing.T) {
	store := NewFileHighScoreStore(filepath.Join(t.TempDir(), "missing", "scores.txt"))
	if err := store.Save(1); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestGdataHighScoreStore(t *testing.T) {
	manager := openTestGdata(t, "dungeon_highscore_test")
	store := NewGdataHighScoreStore(manager)

	if got, err := store.Load(); err != nil || got != 0 {
		t.Fatalf("initial Load() = %d, %v; want 0, nil", got, err)
	}
	if err := store.Save(55); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if got, err := store.Load(); err != nil || got != 55 {
		t.Errorf("Load() = %d, %v; want 55, nil", got, err)
	}
}

func TestGdataHighScoreStoreNilManager(t *testing.T) {
	store := NewGdataHighScoreStore(nil)
	if err := store.Save(10); err != nil {
		t.Errorf("degraded Save() should not fail: %v", err)
	}
	if got, _ := store.Load(); got != 0 {
		t.Errorf("degraded Load() = %d, want 0", got)
	}
}

func TestLoadHighScoreNilStore(t *testing.T) {
	if LoadHighScore(nil) != 0 {
		t.Error("nil store should read as 0")
	}
}

func strPtr(s string) *string { return &s }
