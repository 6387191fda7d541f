package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// memFS 内存文件表，模拟 embedded.ReadFile
type memFS map[string][]byte

func (m memFS) ReadFile(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return data, nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// testWAV 生成一段 16 位双声道静音 WAV
func testWAV(t *testing.T, samples int) []byte {
	t.Helper()
	const channels, bits, rate = 2, 16, 48000
	dataSize := samples * channels * bits / 8

	var buf bytes.Buffer
	w := func(v interface{}) {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	buf.WriteString("RIFF")
	w(uint32(36 + dataSize))
	buf.WriteString("WAVEfmt ")
	w(uint32(16))
	w(uint16(1))
	w(uint16(channels))
	w(uint32(rate))
	w(uint32(rate * channels * bits / 8))
	w(uint16(channels * bits / 8))
	w(uint16(bits))
	buf.WriteString("data")
	w(uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

func newTestResources(t *testing.T) (*ResourceManager, memFS) {
	t.Helper()
	files := memFS{
		"assets/config/sprites.txt":       []byte("# sprites\nimages/player_right.png\nimages/coin.png\n"),
		"assets/config/sounds.txt":        []byte("sounds/gulp.wav\n\nsounds/chest_open.ogg\n"),
		"assets/config/wall_textures.txt": []byte("images/wall_1.png\nimages/wall_2.png\n"),
		"assets/images/player_right.png":  testPNG(t),
		"assets/images/wall_1.png":        testPNG(t),
		"assets/sounds/gulp.wav":          testWAV(t, 480),
	}
	rm := NewResourceManager(testAudioContext, files.ReadFile, "assets")
	if err := rm.LoadManifests(); err != nil {
		t.Fatalf("LoadManifests() error: %v", err)
	}
	return rm, files
}

func TestLoadManifests(t *testing.T) {
	rm, _ := newTestResources(t)

	if rm.WallTextureCount() != 2 {
		t.Errorf("WallTextureCount() = %d, want 2", rm.WallTextureCount())
	}
	ids := rm.SoundIDs()
	if len(ids) != 2 || ids[0] != "gulp" || ids[1] != "chest_open" {
		t.Errorf("SoundIDs() = %v", ids)
	}
	if p, ok := rm.SoundPath("gulp"); !ok || p != "assets/sounds/gulp.wav" {
		t.Errorf("SoundPath(gulp) = %q, %v", p, ok)
	}
}

func TestLoadManifestsMissing(t *testing.T) {
	rm := NewResourceManager(nil, memFS{}.ReadFile, "assets")
	if err := rm.LoadManifests(); err == nil {
		t.Error("expected error for missing manifests")
	}
}

func TestSprite(t *testing.T) {
	rm, _ := newTestResources(t)

	tests := []struct {
		name    string
		sprite  string
		wantNil bool
	}{
		{"已注册且存在", "player_right", false},
		{"已注册但文件缺失", "coin", true},
		{"未注册", "dragon", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := rm.Sprite(tt.sprite)
			if (img == nil) != tt.wantNil {
				t.Errorf("Sprite(%q) nil = %v, want %v", tt.sprite, img == nil, tt.wantNil)
			}
		})
	}

	// 缓存命中返回同一实例
	if rm.Sprite("player_right") != rm.Sprite("player_right") {
		t.Error("expected cached image")
	}
}

func TestWallTexture(t *testing.T) {
	rm, _ := newTestResources(t)
	if rm.WallTexture(0) == nil {
		t.Error("wall texture 0 should load")
	}
	if rm.WallTexture(1) != nil {
		t.Error("wall texture 1 is missing and should be nil")
	}
	if rm.WallTexture(2) != rm.WallTexture(0) {
		t.Error("index should wrap around")
	}
}

func TestLoadSoundEffect(t *testing.T) {
	rm, _ := newTestResources(t)

	player, err := rm.LoadSoundEffect("assets/sounds/gulp.wav")
	if err != nil {
		t.Fatalf("LoadSoundEffect() error: %v", err)
	}
	again, _ := rm.LoadSoundEffect("assets/sounds/gulp.wav")
	if player != again {
		t.Error("expected cached player")
	}

	if _, err := rm.LoadSoundEffect("assets/sounds/chest_open.ogg"); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := rm.LoadSoundEffect("assets/sounds/readme.txt"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestAudioManagerPlaySound(t *testing.T) {
	rm, _ := newTestResources(t)
	sm := NewSettingsManager(nil)
	am := NewAudioManager(rm, sm)

	if !am.PlaySound("gulp") {
		t.Error("PlaySound(gulp) should succeed")
	}
	if am.PlaySound("chest_open") {
		t.Error("PlaySound should fail for a sound whose file is missing")
	}
	if am.PlaySound("unknown") {
		t.Error("PlaySound should fail for an unknown cue")
	}

	sm.SetSoundEnabled(false)
	if am.PlaySound("gulp") {
		t.Error("PlaySound should return false when sound is disabled")
	}
}

func TestAudioManagerPreload(t *testing.T) {
	rm, _ := newTestResources(t)
	am := NewAudioManager(rm, nil)
	if got := am.PreloadSounds(); got != 1 {
		t.Errorf("PreloadSounds() = %d, want 1", got)
	}
	am.SetSoundVolume(0.2)
	if am.GetSoundVolume() != 0.8 {
		t.Error("without settings manager the default volume is used")
	}
}

var _ SoundPlayer = (*AudioManager)(nil)
var _ SoundPlayer = NopSoundPlayer{}
