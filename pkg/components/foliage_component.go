package components

import (
	"image/color"

	"github.com/gonewx/startree/internal/vec"
)

// FoliageFieldComponent 针叶粒子场
//
// 数万个针叶点作为一个场组件整体持有，而不是每点一个实体：
// 位置缓冲使用 float32（internal/vec.Vec3f）以减半内存。
// Scatter/Tree 缓冲创建后不可变；Current 每帧由 FoliageSystem 重写。
type FoliageFieldComponent struct {
	// Scatter 散落位置缓冲（不可变）
	Scatter []vec.Vec3f
	// Tree 树形位置缓冲（不可变，黄金角螺旋采样）
	Tree []vec.Vec3f
	// Current 实时位置缓冲
	Current []vec.Vec3f
	// Colors 每点颜色（深浅不一的绿色，创建时确定）
	Colors []color.RGBA

	// MorphFactor 全局形变因子 ∈ [0, 1]
	// 0 = 完全散落，1 = 完全树形；向目标连续推进，从不跳变
	MorphFactor float64
}
