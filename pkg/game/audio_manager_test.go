package game

import "testing"

// TestGenerateChimePCM 提示音 PCM 的格式与幅度
func TestGenerateChimePCM(t *testing.T) {
	pcm := generateChimePCM()

	wantLen := int(chimeDuration*audioSampleRate) * 4
	if len(pcm) != wantLen {
		t.Fatalf("PCM 长度应为 %d 字节, 实际 %d", wantLen, len(pcm))
	}

	// 前段应有非零样本（不是一段静音）
	silent := true
	for i := 0; i < len(pcm)/4 && silent; i++ {
		if pcm[i*4] != 0 || pcm[i*4+1] != 0 {
			silent = false
		}
	}
	if silent {
		t.Error("提示音不应全程静音")
	}

	// 尾部包络应衰减到接近零
	tail := int16(pcm[len(pcm)-4]) | int16(pcm[len(pcm)-3])<<8
	if tail > 500 || tail < -500 {
		t.Errorf("尾部样本应接近静音, 实际 %d", tail)
	}
}

// TestPlayModeChimeNilContext 无音频上下文时为空操作
func TestPlayModeChimeNilContext(t *testing.T) {
	am := NewAudioManager(nil, nil)
	// 不应 panic
	am.PlayModeChime()
}
