package main

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/decker502/dungeon/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone 一段合成音
// sweep 为每秒的频率变化量；noise 为 true 时忽略频率输出白噪声
type tone struct {
	freq  float64
	dur   time.Duration
	sweep float64
	noise bool
	amp   float64
}

// cueTones 终端版没有音频文件，每个音效名对应几段合成音
var cueTones = map[string][]tone{
	game.SoundDefault:    {{freq: 330, dur: 80 * time.Millisecond, amp: 0.2}, {freq: 440, dur: 120 * time.Millisecond, amp: 0.2}},
	game.SoundChestOpen:  {{freq: 200, dur: 150 * time.Millisecond, sweep: 1200, amp: 0.25}},
	game.SoundKnifeSwing: {{dur: 60 * time.Millisecond, noise: true, amp: 0.15}},
	game.SoundKnifeHit:   {{freq: 900, dur: 50 * time.Millisecond, sweep: -4000, amp: 0.3}},
	game.SoundDemonDie:   {{freq: 260, dur: 300 * time.Millisecond, sweep: -600, amp: 0.3}},
	game.SoundBowShoot:   {{freq: 700, dur: 70 * time.Millisecond, sweep: -3000, amp: 0.2}},
	game.SoundArrowHit:   {{dur: 40 * time.Millisecond, noise: true, amp: 0.2}},
	game.SoundCharDie:    {{freq: 440, dur: 200 * time.Millisecond, sweep: -800, amp: 0.3}, {freq: 220, dur: 400 * time.Millisecond, sweep: -300, amp: 0.3}},
	game.SoundHighScore:  {{freq: 523, dur: 100 * time.Millisecond, amp: 0.2}, {freq: 659, dur: 100 * time.Millisecond, amp: 0.2}, {freq: 784, dur: 200 * time.Millisecond, amp: 0.2}},
	game.SoundAmmoPickup: {{freq: 600, dur: 60 * time.Millisecond, amp: 0.2}},
	game.SoundCoinPickup: {{freq: 988, dur: 50 * time.Millisecond, amp: 0.2}, {freq: 1319, dur: 120 * time.Millisecond, amp: 0.2}},
	game.SoundGulp:       {{freq: 150, dur: 120 * time.Millisecond, sweep: 900, amp: 0.25}},
	game.SoundGrowl:      {{freq: 90, dur: 350 * time.Millisecond, sweep: 60, amp: 0.3}},
	game.PainSounds[0]:   {{freq: 300, dur: 100 * time.Millisecond, sweep: -900, amp: 0.25}},
	game.PainSounds[1]:   {{freq: 340, dur: 110 * time.Millisecond, sweep: -1000, amp: 0.25}},
	game.PainSounds[2]:   {{freq: 280, dur: 120 * time.Millisecond, sweep: -700, amp: 0.25}},
}

// toneGenerator 带线性衰减包络的正弦扫频或白噪声
type toneGenerator struct {
	sr    beep.SampleRate
	tone  tone
	total int
	pos   int
	phase float64
	rng   *rand.Rand
}

func newToneGenerator(sr beep.SampleRate, t tone, rng *rand.Rand) *toneGenerator {
	return &toneGenerator{sr: sr, tone: t, total: sr.N(t.dur), rng: rng}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		var v float64
		if g.tone.noise {
			v = g.rng.Float64()*2 - 1
		} else {
			t := float64(g.pos) / float64(g.sr)
			freq := math.Max(g.tone.freq+g.tone.sweep*t, 20)
			g.phase += 2 * math.Pi * freq / float64(g.sr)
			v = math.Sin(g.phase)
		}
		envelope := 1 - float64(g.pos)/float64(g.total)
		v *= g.tone.amp * envelope

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
		n++
	}
	return n, true
}

func (g *toneGenerator) Err() error {
	return nil
}

// cueStreamer 音效名对应的完整音频流
func cueStreamer(soundID string, rng *rand.Rand) (beep.Streamer, bool) {
	tones, ok := cueTones[soundID]
	if !ok {
		return nil, false
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		// 固定频率的纯音直接用 beep 自带的正弦发生器
		if !t.noise && t.sweep == 0 {
			sine, err := generators.SineTone(sampleRate, t.freq)
			if err != nil {
				continue
			}
			parts = append(parts, beep.Take(sampleRate.N(t.dur), withAmp(sine, t.amp)))
			continue
		}
		parts = append(parts, newToneGenerator(sampleRate, t, rng))
	}
	return beep.Seq(parts...), true
}

// withAmp 按线性倍数缩放音量，amp <= 0 时静音
func withAmp(s beep.Streamer, amp float64) beep.Streamer {
	if amp <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(amp)}
}

// synth 实现 game.SoundPlayer，所有音效混进同一个 Mixer
type synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
	muted       bool
}

func newSynth(muted bool) *synth {
	return &synth{
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		muted: muted,
	}
}

// init 打开声卡；失败时游戏照常运行，只是没有声音
func (s *synth) init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// PlaySound 播放一次音效
func (s *synth) PlaySound(soundID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized || s.muted {
		return false
	}
	streamer, ok := cueStreamer(soundID, s.rng)
	if !ok {
		return false
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

func (s *synth) toggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

func (s *synth) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
