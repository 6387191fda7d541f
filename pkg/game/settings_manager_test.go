package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata Manager，失败时跳过测试
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowScale != 2 {
		t.Errorf("WindowScale: got %d, want 2", settings.WindowScale)
	}
}

// TestSettingsManagerNilGdata 降级模式：只在内存中生效，保存不报错
func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("in-memory setting should be kept")
	}
}

func TestSettingsClamp(t *testing.T) {
	sm := NewSettingsManager(nil)

	tests := []struct {
		name       string
		volume     float64
		wantVolume float64
		scale      int
		wantScale  int
	}{
		{"正常范围", 0.5, 0.5, 2, 2},
		{"低于下限", -1, 0, 0, 1},
		{"高于上限", 1.5, 1, 9, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetSoundVolume(tt.volume)
			sm.SetWindowScale(tt.scale)
			if got := sm.GetSettings().SoundVolume; got != tt.wantVolume {
				t.Errorf("SoundVolume = %v, want %v", got, tt.wantVolume)
			}
			if got := sm.GetSettings().WindowScale; got != tt.wantScale {
				t.Errorf("WindowScale = %v, want %v", got, tt.wantScale)
			}
		})
	}
}

func TestSettingsSaveAndReload(t *testing.T) {
	manager := openTestGdata(t, "dungeon_settings_test")

	sm := NewSettingsManager(manager)
	sm.SetSoundVolume(0.3)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	got := reloaded.GetSettings()
	if got.SoundVolume != 0.3 || !got.Fullscreen {
		t.Errorf("reloaded settings = %+v", got)
	}
}
