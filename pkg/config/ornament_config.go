package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/startree/pkg/embedded"
	"github.com/gonewx/startree/pkg/types"
)

// OrnamentConfig 挂饰类别参数表
// 对应 data/ornaments.yaml
//
// 7 个挂饰类别的全部视觉/物理参数集中在这张表里，
// 运行时按枚举类别查表，没有任何按类别分支的代码。
type OrnamentConfig struct {
	// Categories 类别名 -> 参数
	Categories map[string]OrnamentCategoryConfig `yaml:"categories"`
	// BaseBandCategory 底部填充带使用的固定类别名
	BaseBandCategory string `yaml:"baseBandCategory"`

	// 解析后的查找表（加载时构建，运行时只读）
	byCategory map[types.OrnamentCategory]*CategoryParams
	baseBand   types.OrnamentCategory
}

// OrnamentCategoryConfig 单个类别的 YAML 参数
type OrnamentCategoryConfig struct {
	// DrawWeight 加权随机抽取的权重（相对值）
	DrawWeight float64 `yaml:"drawWeight"`
	// Mass 物理重量（0~1 之外也合法，但建议 0.3~2.0）
	// 动画驱动用它缩放平滑速率：重的挂饰落位慢
	Mass float64 `yaml:"mass"`
	// ScaleMin 渲染缩放下限
	ScaleMin float64 `yaml:"scaleMin"`
	// ScaleMax 渲染缩放上限
	ScaleMax float64 `yaml:"scaleMax"`
	// CollisionRadius 基准碰撞半径（世界单位，乘以实际缩放得到有效半径）
	CollisionRadius float64 `yaml:"collisionRadius"`
	// Palette 配色（#RRGGBB 十六进制列表）
	Palette []string `yaml:"palette"`
}

// CategoryParams 解析后的类别参数
type CategoryParams struct {
	Category        types.OrnamentCategory
	DrawWeight      float64
	Mass            float64
	ScaleMin        float64
	ScaleMax        float64
	CollisionRadius float64
	Palette         []color.RGBA
}

// EffectiveRadius 返回指定缩放下的有效碰撞半径
func (p *CategoryParams) EffectiveRadius(scale float64) float64 {
	return p.CollisionRadius * scale
}

// LoadOrnamentConfig 从嵌入资源加载挂饰参数表
func LoadOrnamentConfig(path string) (*OrnamentConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ornament config: %w", err)
	}
	return ParseOrnamentConfig(data)
}

// ParseOrnamentConfig 解析并校验挂饰参数表
func ParseOrnamentConfig(data []byte) (*OrnamentConfig, error) {
	var config OrnamentConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse ornament YAML: %w", err)
	}

	if err := config.build(); err != nil {
		return nil, fmt.Errorf("invalid ornament config: %w", err)
	}

	return &config, nil
}

// build 校验并构建枚举索引的查找表
func (c *OrnamentConfig) build() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("categories cannot be empty")
	}

	c.byCategory = make(map[types.OrnamentCategory]*CategoryParams, len(c.Categories))

	for name, cc := range c.Categories {
		cat, ok := types.ParseOrnamentCategory(name)
		if !ok {
			return fmt.Errorf("unknown ornament category %q", name)
		}
		if cc.DrawWeight < 0 {
			return fmt.Errorf("category %q: drawWeight must be >= 0, got %v", name, cc.DrawWeight)
		}
		if cc.Mass <= 0 {
			return fmt.Errorf("category %q: mass must be > 0, got %v", name, cc.Mass)
		}
		if cc.ScaleMin <= 0 || cc.ScaleMax < cc.ScaleMin {
			return fmt.Errorf("category %q: scale range [%v, %v] is invalid", name, cc.ScaleMin, cc.ScaleMax)
		}
		if cc.CollisionRadius <= 0 {
			return fmt.Errorf("category %q: collisionRadius must be > 0, got %v", name, cc.CollisionRadius)
		}
		if len(cc.Palette) == 0 {
			return fmt.Errorf("category %q: palette cannot be empty", name)
		}

		palette := make([]color.RGBA, 0, len(cc.Palette))
		for _, hex := range cc.Palette {
			rgba, err := parseHexColor(hex)
			if err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			palette = append(palette, rgba)
		}

		c.byCategory[cat] = &CategoryParams{
			Category:        cat,
			DrawWeight:      cc.DrawWeight,
			Mass:            cc.Mass,
			ScaleMin:        cc.ScaleMin,
			ScaleMax:        cc.ScaleMax,
			CollisionRadius: cc.CollisionRadius,
			Palette:         palette,
		}
	}

	// 7 个可抽取类别必须全部在表中
	for _, cat := range types.DrawableCategories() {
		if _, ok := c.byCategory[cat]; !ok {
			return fmt.Errorf("category %q missing from table", cat)
		}
	}

	baseBand, ok := types.ParseOrnamentCategory(c.BaseBandCategory)
	if !ok {
		return fmt.Errorf("unknown baseBandCategory %q", c.BaseBandCategory)
	}
	if _, ok := c.byCategory[baseBand]; !ok {
		return fmt.Errorf("baseBandCategory %q missing from table", c.BaseBandCategory)
	}
	c.baseBand = baseBand

	return nil
}

// Params 按类别查表
// 未知类别返回 nil
func (c *OrnamentConfig) Params(cat types.OrnamentCategory) *CategoryParams {
	return c.byCategory[cat]
}

// BaseBand 返回底部填充带使用的类别
func (c *OrnamentConfig) BaseBand() types.OrnamentCategory {
	return c.baseBand
}

// TotalDrawWeight 返回可抽取类别的权重和
func (c *OrnamentConfig) TotalDrawWeight() float64 {
	total := 0.0
	for _, cat := range types.DrawableCategories() {
		total += c.byCategory[cat].DrawWeight
	}
	return total
}

// parseHexColor 解析 #RRGGBB 格式的颜色
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q (expected #RRGGBB)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
