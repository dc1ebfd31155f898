package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音频参数
const (
	audioSampleRate = 48000
	// chimeDuration 提示音时长（秒）
	chimeDuration = 0.35
	// chimeFrequency 提示音基频（赫兹）
	chimeFrequency = 880.0
)

// AudioManager 音频管理器
// 模式切换时播放一个程序生成的衰减正弦提示音
type AudioManager struct {
	context  *audio.Context
	settings *SettingsManager
	chimePCM []byte
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - context: ebiten 音频上下文（App 持有）
//   - settings: 设置管理器，用于读取提示音开关
func NewAudioManager(context *audio.Context, settings *SettingsManager) *AudioManager {
	return &AudioManager{
		context:  context,
		settings: settings,
		chimePCM: generateChimePCM(),
	}
}

// PlayModeChime 播放模式切换提示音
// 设置关闭提示音或无音频上下文时为空操作
func (am *AudioManager) PlayModeChime() {
	if am.context == nil {
		return
	}
	if am.settings != nil && !am.settings.GetSettings().SoundEnabled {
		return
	}
	player := am.context.NewPlayerFromBytes(am.chimePCM)
	player.Play()
}

// generateChimePCM 生成提示音的 PCM 数据
// 格式：16-bit 小端、双声道、48kHz；指数衰减的正弦波加一个五度泛音
func generateChimePCM() []byte {
	sampleCount := int(chimeDuration * audioSampleRate)
	pcm := make([]byte, sampleCount*4)

	for i := 0; i < sampleCount; i++ {
		t := float64(i) / audioSampleRate
		envelope := math.Exp(-6 * t / chimeDuration)
		v := math.Sin(2*math.Pi*chimeFrequency*t) + 0.4*math.Sin(2*math.Pi*chimeFrequency*1.5*t)
		sample := int16(v / 1.4 * envelope * 0.3 * math.MaxInt16)

		// 左右声道相同
		pcm[i*4] = byte(sample)
		pcm[i*4+1] = byte(sample >> 8)
		pcm[i*4+2] = byte(sample)
		pcm[i*4+3] = byte(sample >> 8)
	}

	return pcm
}
