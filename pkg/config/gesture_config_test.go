package config

import (
	"strings"
	"testing"
)

func validGestureYAML() string {
	return `
pinchThreshold: 0.07
openThreshold: 0.38
fistThreshold: 0.22
scaleMax: 10.0
scaleEngageRate: 0.04
scaleReleaseRate: 0.18
scaleNeutralEpsilon: 0.05
zoomThreshold: 3.0
rotationGain: 2.0
neutralDecayRate: 0.17
`
}

// TestParseGestureConfig 合法配置解析成功
func TestParseGestureConfig(t *testing.T) {
	cfg, err := ParseGestureConfig([]byte(validGestureYAML()))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if cfg.ScaleMax != 10.0 || cfg.NeutralDecayRate != 0.17 {
		t.Errorf("配置值错误: %+v", cfg)
	}
}

// TestParseGestureConfigValidation 非法配置在解析边界被拒绝
func TestParseGestureConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			"释放速率不得慢于进入速率",
			func(y string) string { return strings.Replace(y, "scaleReleaseRate: 0.18", "scaleReleaseRate: 0.03", 1) },
			"scaleReleaseRate",
		},
		{
			"中性衰减太慢无法在限定帧数内归位",
			func(y string) string { return strings.Replace(y, "neutralDecayRate: 0.17", "neutralDecayRate: 0.15", 1) },
			"too slow",
		},
		{
			"展示阈值必须小于 scaleMax",
			func(y string) string { return strings.Replace(y, "zoomThreshold: 3.0", "zoomThreshold: 12.0", 1) },
			"zoomThreshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGestureConfig([]byte(tt.mutate(validGestureYAML())))
			if err == nil {
				t.Fatal("非法配置应返回错误")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("错误信息应包含 %q, 实际 %v", tt.wantErr, err)
			}
		})
	}
}
