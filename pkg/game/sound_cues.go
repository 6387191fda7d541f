package game

// 音效名称，对应 assets/config/sounds.txt 中的文件名（不含扩展名）
const (
	SoundDefault    = "default"     // 进入房间
	SoundChestOpen  = "chest_open"  // 打开宝箱
	SoundKnifeSwing = "knife_swing" // 挥刀
	SoundKnifeHit   = "knife_hit"   // 刀命中恶魔或火球
	SoundDemonDie   = "demon_die"   // 恶魔死亡
	SoundBowShoot   = "bow_shoot"   // 射箭
	SoundArrowHit   = "arrow_hit"   // 箭射中墙
	SoundCharDie    = "char_die"    // 玩家死亡
	SoundHighScore  = "highscore"   // 刷新最高分
	SoundAmmoPickup = "pickup_coin" // 拾取箭袋
	SoundCoinPickup = "coin_pickup" // 拾取金币
	SoundGulp       = "gulp"        // 喝药水，恶魔吐火球也用这个
	SoundGrowl      = "fireball"    // 恶魔发现玩家
)

// PainSounds 玩家受伤时随机选择其一
var PainSounds = []string{"char_pain_1", "char_pain_2", "char_pain_3"}

// SoundPlayer 按名称播放音效
// 返回是否真正播放（音效被禁用或资源缺失时返回 false）
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// NopSoundPlayer 不发声的实现，用于无音频环境和工具程序
type NopSoundPlayer struct{}

// PlaySound 总是返回 false
func (NopSoundPlayer) PlaySound(string) bool { return false }
