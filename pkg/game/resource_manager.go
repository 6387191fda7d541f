package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"path"
	"strings"

	"github.com/decker502/dungeon/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Manifest locations relative to the asset root.
const (
	SpriteManifest      = "config/sprites.txt"
	SoundManifest       = "config/sounds.txt"
	WallTextureManifest = "config/wall_textures.txt"
)

// ReadFileFunc reads a file by slash-separated path.
// embedded.ReadFile and os.ReadFile both satisfy it.
type ReadFileFunc func(name string) ([]byte, error)

// ResourceManager is responsible for centralized management of game resources.
// It resolves sprite names and sound cue names through the asset manifests
// and caches decoded images and audio players so each file is decoded once.
//
// Missing files are not fatal: Sprite returns nil (the renderer draws a
// placeholder) and sound cues without a player are silently skipped.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game
// goroutine before or between ticks.
//
// Usage:
//
//	rm := NewResourceManager(audio.NewContext(48000), embedded.ReadFile, "assets")
//	if err := rm.LoadManifests(); err != nil {
//	    log.Printf("Failed to load manifests: %v", err)
//	}
//	img := rm.Sprite("player_right")
type ResourceManager struct {
	audioContext *audio.Context // May be nil when audio is unavailable
	readFile     ReadFileFunc
	root         string // Asset root, e.g. "assets"

	imageCache map[string]*ebiten.Image // path -> Image
	audioCache map[string]*audio.Player // path -> Player
	missing    map[string]bool          // paths that failed once, not retried

	sprites      map[string]string // sprite name -> path
	sounds       map[string]string // cue name -> path
	soundIDs     []string          // cue names in manifest order
	wallTextures []string          // wall texture paths in manifest order
}

// NewResourceManager creates a ResourceManager reading files through readFile.
//
// Parameters:
//   - audioContext: shared audio context; nil disables sound decoding.
//   - readFile: file reader (embedded.ReadFile in the game, os.ReadFile in tools).
//   - root: asset root that manifest entries are relative to.
func NewResourceManager(audioContext *audio.Context, readFile ReadFileFunc, root string) *ResourceManager {
	return &ResourceManager{
		audioContext: audioContext,
		readFile:     readFile,
		root:         root,
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		missing:      make(map[string]bool),
		sprites:      make(map[string]string),
		sounds:       make(map[string]string),
	}
}

// resolve joins a manifest entry with the asset root.
func (rm *ResourceManager) resolve(entry string) string {
	entry = strings.ReplaceAll(entry, "\\", "/")
	if rm.root == "" {
		return entry
	}
	return path.Join(rm.root, entry)
}

// readManifest reads and parses one manifest file under the asset root.
func (rm *ResourceManager) readManifest(name string) ([]string, error) {
	data, err := rm.readFile(rm.resolve(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", name, err)
	}
	entries, err := config.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", name, err)
	}
	return entries, nil
}

// LoadManifests reads the sprite, sound and wall texture manifests.
// Entries are registered by file stem (see config.CueName).
func (rm *ResourceManager) LoadManifests() error {
	sprites, err := rm.readManifest(SpriteManifest)
	if err != nil {
		return err
	}
	for _, entry := range sprites {
		rm.sprites[config.CueName(entry)] = rm.resolve(entry)
	}

	sounds, err := rm.readManifest(SoundManifest)
	if err != nil {
		return err
	}
	rm.soundIDs = rm.soundIDs[:0]
	for _, entry := range sounds {
		id := config.CueName(entry)
		if _, exists := rm.sounds[id]; !exists {
			rm.soundIDs = append(rm.soundIDs, id)
		}
		rm.sounds[id] = rm.resolve(entry)
	}

	walls, err := rm.readManifest(WallTextureManifest)
	if err != nil {
		return err
	}
	rm.wallTextures = rm.wallTextures[:0]
	for _, entry := range walls {
		rm.wallTextures = append(rm.wallTextures, rm.resolve(entry))
	}

	log.Printf("[ResourceManager] Manifests loaded: %d sprites, %d sounds, %d wall textures",
		len(rm.sprites), len(rm.sounds), len(rm.wallTextures))
	return nil
}

// LoadImage loads an image file and caches it for future use.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(filePath string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[filePath]; exists {
		return cachedImage, nil
	}

	data, err := rm.readFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", filePath, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filePath, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[filePath] = ebitenImg
	return ebitenImg, nil
}

// Sprite returns the image registered under name, or nil if it is unknown
// or cannot be loaded. Failures are logged once per path.
func (rm *ResourceManager) Sprite(name string) *ebiten.Image {
	filePath, ok := rm.sprites[name]
	if !ok {
		return nil
	}
	return rm.tryImage(filePath)
}

// WallTexture returns wall texture i (wrapping), or nil.
func (rm *ResourceManager) WallTexture(i int) *ebiten.Image {
	if len(rm.wallTextures) == 0 {
		return nil
	}
	if i < 0 {
		i = -i
	}
	return rm.tryImage(rm.wallTextures[i%len(rm.wallTextures)])
}

// WallTextureCount returns the number of wall textures in the manifest.
func (rm *ResourceManager) WallTextureCount() int {
	return len(rm.wallTextures)
}

func (rm *ResourceManager) tryImage(filePath string) *ebiten.Image {
	if rm.missing[filePath] {
		return nil
	}
	img, err := rm.LoadImage(filePath)
	if err != nil {
		rm.missing[filePath] = true
		log.Printf("[ResourceManager] Warning: %v", err)
		return nil
	}
	return img
}

// SoundIDs returns the registered sound cue names in manifest order.
func (rm *ResourceManager) SoundIDs() []string {
	ids := make([]string, len(rm.soundIDs))
	copy(ids, rm.soundIDs)
	return ids
}

// SoundPath returns the file registered for a cue name.
func (rm *ResourceManager) SoundPath(soundID string) (string, bool) {
	p, ok := rm.sounds[soundID]
	return p, ok
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
// Supported formats: OGG Vorbis (.ogg), WAV (.wav) and MP3 (.mp3).
func (rm *ResourceManager) LoadSoundEffect(filePath string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[filePath]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", filePath)
	}

	data, err := rm.readFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", filePath, err)
	}
	reader := bytes.NewReader(data)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(path.Ext(filePath)); ext {
	case ".ogg":
		decoded, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", filePath, err)
		}
		stream = decoded
	case ".wav":
		decoded, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", filePath, err)
		}
		stream = decoded
	case ".mp3":
		decoded, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", filePath, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .ogg, .wav, .mp3)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", filePath, err)
	}

	rm.audioCache[filePath] = player
	return player, nil
}
