package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/startree/pkg/embedded"
)

// LayoutConfig 布局生成参数
// 对应 data/layout.yaml，定义圆锥树面与散落球体的几何参数
type LayoutConfig struct {
	// Tree 圆锥树面参数
	Tree TreeLayoutConfig `yaml:"tree"`
	// Scatter 散落球体参数
	Scatter ScatterLayoutConfig `yaml:"scatter"`
	// Placer 碰撞感知放置器参数
	Placer PlacerConfig `yaml:"placer"`
	// Foliage 针叶粒子场参数
	Foliage FoliageLayoutConfig `yaml:"foliage"`
	// Snow 雪花参数
	Snow SnowLayoutConfig `yaml:"snow"`
}

// TreeLayoutConfig 圆锥树面参数
type TreeLayoutConfig struct {
	// Height 树高（世界单位）
	Height float64 `yaml:"height"`
	// BaseRadius 树底半径（世界单位）
	BaseRadius float64 `yaml:"baseRadius"`
	// SurfaceBiasMin 表面贴合系数下限
	// 放置半径 = coneRadius(y) × [SurfaceBiasMin, SurfaceBiasMax] 内的随机值
	// 窄带保证实体贴着锥面，而不是填满锥体内部
	SurfaceBiasMin float64 `yaml:"surfaceBiasMin"`
	// SurfaceBiasMax 表面贴合系数上限
	SurfaceBiasMax float64 `yaml:"surfaceBiasMax"`
	// BaseBandHeight 底部填充带高度（归一化 0~1）
	// 第二遍放置会用固定类别填满这条带，避免树脚空洞
	BaseBandHeight float64 `yaml:"baseBandHeight"`
}

// ScatterLayoutConfig 散落球体参数
type ScatterLayoutConfig struct {
	// Radius 散落球半径（世界单位）
	Radius float64 `yaml:"radius"`
}

// PlacerConfig 碰撞感知放置器参数
type PlacerConfig struct {
	// AttemptBudget 每个挂饰的最大尝试次数
	// 预算耗尽时该挂饰被静默丢弃（接受的产品决策，见 DESIGN.md）
	AttemptBudget int `yaml:"attemptBudget"`
	// AcceptFactor 接受系数
	// 候选位置到每个已放置挂饰的距离须 ≥ AcceptFactor × (rA + rB)
	// 取 0.85 允许轻微嵌套，视觉上更饱满
	AcceptFactor float64 `yaml:"acceptFactor"`
	// OrnamentCount 期望放置的挂饰总数（丢弃后实际数可能更少）
	OrnamentCount int `yaml:"ornamentCount"`
	// BaseBandCount 底部填充带的挂饰数
	BaseBandCount int `yaml:"baseBandCount"`
}

// FoliageLayoutConfig 针叶粒子场参数
type FoliageLayoutConfig struct {
	// Count 针叶粒子数量（数万级）
	Count int `yaml:"count"`
	// MorphRate 全局形变因子的推进速率（每秒）
	MorphRate float64 `yaml:"morphRate"`
}

// SnowLayoutConfig 雪花参数
type SnowLayoutConfig struct {
	// Count 雪花数量
	Count int `yaml:"count"`
	// FallSpeedMin 最小下落速度（世界单位/秒）
	FallSpeedMin float64 `yaml:"fallSpeedMin"`
	// FallSpeedMax 最大下落速度（世界单位/秒）
	FallSpeedMax float64 `yaml:"fallSpeedMax"`
	// DriftAmplitude 水平飘移幅度（世界单位）
	DriftAmplitude float64 `yaml:"driftAmplitude"`
}

// LoadLayoutConfig 从嵌入资源加载布局配置
func LoadLayoutConfig(path string) (*LayoutConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout config: %w", err)
	}
	return ParseLayoutConfig(data)
}

// ParseLayoutConfig 解析并校验布局配置
func ParseLayoutConfig(data []byte) (*LayoutConfig, error) {
	var config LayoutConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse layout YAML: %w", err)
	}

	if err := validateLayoutConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid layout config: %w", err)
	}

	return &config, nil
}

// validateLayoutConfig 验证配置的有效性
func validateLayoutConfig(config *LayoutConfig) error {
	if config.Tree.Height <= 0 {
		return fmt.Errorf("tree.height must be > 0, got %v", config.Tree.Height)
	}
	if config.Tree.BaseRadius <= 0 {
		return fmt.Errorf("tree.baseRadius must be > 0, got %v", config.Tree.BaseRadius)
	}
	if config.Tree.SurfaceBiasMin <= 0 || config.Tree.SurfaceBiasMax < config.Tree.SurfaceBiasMin {
		return fmt.Errorf("tree surface bias band [%v, %v] is invalid",
			config.Tree.SurfaceBiasMin, config.Tree.SurfaceBiasMax)
	}
	if config.Tree.BaseBandHeight < 0 || config.Tree.BaseBandHeight > 1 {
		return fmt.Errorf("tree.baseBandHeight must be in [0, 1], got %v", config.Tree.BaseBandHeight)
	}
	if config.Scatter.Radius <= 0 {
		return fmt.Errorf("scatter.radius must be > 0, got %v", config.Scatter.Radius)
	}
	if config.Placer.AttemptBudget <= 0 {
		return fmt.Errorf("placer.attemptBudget must be > 0, got %d", config.Placer.AttemptBudget)
	}
	if config.Placer.AcceptFactor <= 0 || config.Placer.AcceptFactor > 1 {
		return fmt.Errorf("placer.acceptFactor must be in (0, 1], got %v", config.Placer.AcceptFactor)
	}
	if config.Placer.OrnamentCount < 0 {
		return fmt.Errorf("placer.ornamentCount must be >= 0, got %d", config.Placer.OrnamentCount)
	}
	if config.Foliage.Count <= 0 {
		return fmt.Errorf("foliage.count must be > 0, got %d", config.Foliage.Count)
	}
	if config.Foliage.MorphRate <= 0 {
		return fmt.Errorf("foliage.morphRate must be > 0, got %v", config.Foliage.MorphRate)
	}
	if config.Snow.Count < 0 {
		return fmt.Errorf("snow.count must be >= 0, got %d", config.Snow.Count)
	}
	if config.Snow.FallSpeedMax < config.Snow.FallSpeedMin {
		return fmt.Errorf("snow fall speed range [%v, %v] is invalid",
			config.Snow.FallSpeedMin, config.Snow.FallSpeedMax)
	}
	return nil
}
