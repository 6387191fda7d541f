package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音效管理器
// 职责：
//   - 按音效名播放（名称来自 sounds.txt 清单）
//   - 应用 SettingsManager 中的音量和开关
//
// 实现 SoundPlayer 接口，交给 dungeon.Session 使用。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil，使用默认音量
	soundPlayers    map[string]*audio.Player // 音效名 -> 播放器
	failed          map[string]bool          // 加载失败的音效名，不再重试
}

// NewAudioManager 创建音效管理器
//
// 参数：
//   - rm: 资源管理器（用于查找和解码音效）
//   - sm: 设置管理器，可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		failed:          make(map[string]bool),
	}
}

// PlaySound 从头播放一次音效
//
// 返回：
//   - bool: 是否成功播放（音效禁用、未知名称或加载失败时为 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// SetSoundVolume 设置音效音量，立即作用于已缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	for _, player := range am.soundPlayers {
		player.SetVolume(am.getSoundVolume())
	}
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// PreloadSounds 预加载清单中的全部音效，避免首次播放卡顿
// 返回成功加载的数量
func (am *AudioManager) PreloadSounds() int {
	loaded := 0
	for _, id := range am.resourceManager.SoundIDs() {
		if am.getSoundPlayer(id) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d sounds", loaded)
	return loaded
}

func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.failed[soundID] {
		return nil
	}

	filePath, ok := am.resourceManager.SoundPath(soundID)
	if !ok {
		am.failed[soundID] = true
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return nil
	}

	player, err := am.resourceManager.LoadSoundEffect(filePath)
	if err != nil {
		am.failed[soundID] = true
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}
