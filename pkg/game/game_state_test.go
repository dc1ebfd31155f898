package game

import (
	"testing"

	"github.com/gonewx/startree/pkg/types"
)

// TestNewGameStateDefaults 初始状态为散落模式、中性控制信号
func TestNewGameStateDefaults(t *testing.T) {
	gs := NewGameState()

	if gs.Mode() != types.ModeScattered {
		t.Errorf("初始模式应为散落, 实际 %v", gs.Mode())
	}
	if gs.ScaleSignal != 1.0 {
		t.Errorf("初始缩放信号应为 1.0, 实际 %v", gs.ScaleSignal)
	}
	if gs.RotationBias != 0 {
		t.Errorf("初始旋转偏置应为 0, 实际 %v", gs.RotationBias)
	}
}

// TestSetModeRejectsInvalid 非法模式值在边界处被拒绝
func TestSetModeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		mode    types.Mode
		wantErr bool
	}{
		{"散落模式合法", types.ModeScattered, false},
		{"树形模式合法", types.ModeTreeShape, false},
		{"负值非法", types.Mode(-1), true},
		{"越界值非法", types.Mode(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			err := gs.SetMode(tt.mode)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetMode(%v) err=%v, wantErr=%v", tt.mode, err, tt.wantErr)
			}
			if tt.wantErr && gs.Mode() != types.ModeScattered {
				t.Errorf("非法值不应改变模式, 实际 %v", gs.Mode())
			}
		})
	}
}

// TestToggleMode 两个模式间往返切换
func TestToggleMode(t *testing.T) {
	gs := NewGameState()

	gs.ToggleMode()
	if gs.Mode() != types.ModeTreeShape {
		t.Errorf("第一次切换应进入树形, 实际 %v", gs.Mode())
	}
	gs.ToggleMode()
	if gs.Mode() != types.ModeScattered {
		t.Errorf("第二次切换应回到散落, 实际 %v", gs.Mode())
	}
}

// TestGetGameStateSingleton 全局单例返回同一实例
func TestGetGameStateSingleton(t *testing.T) {
	a := GetGameState()
	b := GetGameState()
	if a != b {
		t.Error("GetGameState 应返回同一实例")
	}
}
