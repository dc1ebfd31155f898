package components

import (
	"image/color"

	"github.com/gonewx/startree/pkg/types"
)

// OrnamentComponent 挂饰的视觉属性
// 类别参数来自 data/ornaments.yaml 的查找表
type OrnamentComponent struct {
	// Category 挂饰类别
	Category types.OrnamentCategory
	// Scale 渲染缩放（在类别的 scaleMin~scaleMax 内随机确定）
	Scale float64
	// Color 从类别配色中抽取的颜色
	Color color.RGBA
	// Radius 有效碰撞半径（collisionRadius × Scale，放置时已使用）
	Radius float64
}
