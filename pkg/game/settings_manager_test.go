package game

import "testing"

// TestSettingsManagerDegradedMode gdata 不可用时以默认设置运行，保存不报错
func TestSettingsManagerDegradedMode(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("降级模式创建失败: %v", err)
	}

	s := sm.GetSettings()
	if !s.SoundEnabled || !s.SnowEnabled {
		t.Errorf("默认设置应开启提示音和雪花: %+v", s)
	}
	if s.CameraEnabled {
		t.Error("默认设置不应接入手部跟踪")
	}

	if err := sm.Save(); err != nil {
		t.Errorf("降级模式 Save 不应报错: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("降级模式 Load 不应报错: %v", err)
	}
}

// TestSettingsManagerSetters 设置项写入内存生效
func TestSettingsManagerSetters(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatal(err)
	}

	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	sm.SetSnowEnabled(false)
	sm.SetAutoRotateSpeed(0.5)
	sm.SetCameraEnabled(true)

	s := sm.GetSettings()
	if s.SoundEnabled || !s.Fullscreen || s.SnowEnabled || !s.CameraEnabled {
		t.Errorf("设置项未生效: %+v", s)
	}
	if s.AutoRotateSpeed != 0.5 {
		t.Errorf("自动旋转角速度应为 0.5, 实际 %v", s.AutoRotateSpeed)
	}
}
