package config

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/startree/pkg/embedded"
)

// neutralSettleFrames 无手后控制信号必须回到中性吸附范围的帧数上限
const neutralSettleFrames = 30

// GestureConfig 手势映射参数
// 对应 data/gestures.yaml，定义关键点分类阈值与控制信号的平滑速率
type GestureConfig struct {
	// PinchThreshold 捏合判定：拇指尖-食指尖距离阈值（归一化图像空间）
	PinchThreshold float64 `yaml:"pinchThreshold"`
	// OpenThreshold 张开判定：指尖到手腕平均距离的下限
	OpenThreshold float64 `yaml:"openThreshold"`
	// FistThreshold 握拳判定：指尖到手腕平均距离的上限
	// 介于两个阈值之间时视为中性，不改变模式
	FistThreshold float64 `yaml:"fistThreshold"`

	// ScaleMax 捏合时缩放信号的渐近目标
	ScaleMax float64 `yaml:"scaleMax"`
	// ScaleEngageRate 缩放信号的进入速率（每帧，慢）
	ScaleEngageRate float64 `yaml:"scaleEngageRate"`
	// ScaleReleaseRate 缩放信号的释放速率（每帧，快）
	// 不变式：释放必须快于进入
	ScaleReleaseRate float64 `yaml:"scaleReleaseRate"`
	// ScaleNeutralEpsilon 靠近中性值 1.0 的吸附范围
	ScaleNeutralEpsilon float64 `yaml:"scaleNeutralEpsilon"`
	// ZoomThreshold 缩放信号超过该值时照片进入展示（钉住）模式
	ZoomThreshold float64 `yaml:"zoomThreshold"`

	// RotationGain 手腕水平偏移到旋转偏置的线性增益
	RotationGain float64 `yaml:"rotationGain"`
	// NeutralDecayRate 无手时控制信号向中性值衰减的速率（每帧）
	NeutralDecayRate float64 `yaml:"neutralDecayRate"`
}

// LoadGestureConfig 从嵌入资源加载手势配置
func LoadGestureConfig(path string) (*GestureConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gesture config: %w", err)
	}
	return ParseGestureConfig(data)
}

// ParseGestureConfig 解析并校验手势配置
func ParseGestureConfig(data []byte) (*GestureConfig, error) {
	var config GestureConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse gesture YAML: %w", err)
	}

	if err := validateGestureConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid gesture config: %w", err)
	}

	return &config, nil
}

// validateGestureConfig 验证配置的有效性
func validateGestureConfig(config *GestureConfig) error {
	if config.PinchThreshold <= 0 {
		return fmt.Errorf("pinchThreshold must be > 0, got %v", config.PinchThreshold)
	}
	if config.FistThreshold <= 0 || config.OpenThreshold <= config.FistThreshold {
		return fmt.Errorf("openness thresholds invalid: fist %v must be < open %v and > 0",
			config.FistThreshold, config.OpenThreshold)
	}
	if config.ScaleMax <= 1 {
		return fmt.Errorf("scaleMax must be > 1, got %v", config.ScaleMax)
	}
	if config.ScaleEngageRate <= 0 || config.ScaleEngageRate >= 1 {
		return fmt.Errorf("scaleEngageRate must be in (0, 1), got %v", config.ScaleEngageRate)
	}
	if config.ScaleReleaseRate <= 0 || config.ScaleReleaseRate >= 1 {
		return fmt.Errorf("scaleReleaseRate must be in (0, 1), got %v", config.ScaleReleaseRate)
	}
	if config.ScaleReleaseRate <= config.ScaleEngageRate {
		return fmt.Errorf("scaleReleaseRate (%v) must be greater than scaleEngageRate (%v)",
			config.ScaleReleaseRate, config.ScaleEngageRate)
	}
	if config.ScaleNeutralEpsilon <= 0 {
		return fmt.Errorf("scaleNeutralEpsilon must be > 0, got %v", config.ScaleNeutralEpsilon)
	}
	if config.ZoomThreshold <= 1 || config.ZoomThreshold >= config.ScaleMax {
		return fmt.Errorf("zoomThreshold must be in (1, scaleMax), got %v", config.ZoomThreshold)
	}
	if config.RotationGain <= 0 {
		return fmt.Errorf("rotationGain must be > 0, got %v", config.RotationGain)
	}
	if config.NeutralDecayRate <= 0 || config.NeutralDecayRate >= 1 {
		return fmt.Errorf("neutralDecayRate must be in (0, 1), got %v", config.NeutralDecayRate)
	}
	// 最坏情况（信号停在 scaleMax）下 30 帧内必须衰减进吸附范围，
	// 否则无手后场景迟迟不回中性
	residual := (config.ScaleMax - 1) * math.Pow(1-config.NeutralDecayRate, neutralSettleFrames)
	if residual > config.ScaleNeutralEpsilon {
		return fmt.Errorf("neutralDecayRate %v too slow: residual %.4f after %d frames exceeds epsilon %v",
			config.NeutralDecayRate, residual, neutralSettleFrames, config.ScaleNeutralEpsilon)
	}
	return nil
}
