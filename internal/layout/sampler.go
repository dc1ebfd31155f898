// Package layout 实现过程化布局生成
//
// 为每个实体计算两套固定坐标：散落位置（球体内近似均匀分布）
// 与树形位置（偏向圆锥侧表面的窄带采样），
// 以及挂饰的碰撞感知放置（拒绝采样，见 placer.go）。
// 给定同一个随机源时输出是确定的。
package layout

import (
	"math"
	"math/rand"

	"github.com/gonewx/startree/internal/vec"
)

// goldenAngle 黄金角（弧度）
// 针叶粒子场按固定角增量排布方位角，近似均匀的螺旋序列。
// 数万个点时纯随机方位角会出现肉眼可见的聚簇。
const goldenAngle = math.Pi * (3 - 2.2360679774997896) // π(3-√5) ≈ 2.39996

// ConeSpec 圆锥树面的几何参数
type ConeSpec struct {
	// Height 树高
	Height float64
	// BaseRadius 树底半径
	BaseRadius float64
	// SurfaceBiasMin 表面贴合系数下限
	SurfaceBiasMin float64
	// SurfaceBiasMax 表面贴合系数上限
	SurfaceBiasMax float64
}

// RadiusAt 返回高度 y 处的锥面半径
// coneRadius(y) = baseRadius × (1 - y/height)
func (c ConeSpec) RadiusAt(y float64) float64 {
	return c.BaseRadius * (1 - y/c.Height)
}

// Sampler 布局采样器
// 持有注入的随机源；所有采样方法对同一源是确定的
type Sampler struct {
	rng           *rand.Rand
	cone          ConeSpec
	scatterRadius float64
	spiralIndex   int
}

// NewSampler 创建布局采样器
func NewSampler(rng *rand.Rand, cone ConeSpec, scatterRadius float64) *Sampler {
	return &Sampler{
		rng:           rng,
		cone:          cone,
		scatterRadius: scatterRadius,
	}
}

// Cone 返回采样器的圆锥参数
func (s *Sampler) Cone() ConeSpec {
	return s.cone
}

// ScatterPosition 采样散落位置：固定半径球体内的近似均匀点
// 使用立方体内拒绝采样，期望迭代次数约 1.9 次
func (s *Sampler) ScatterPosition() vec.Vec3 {
	for {
		p := vec.Vec3{
			X: (s.rng.Float64()*2 - 1) * s.scatterRadius,
			Y: (s.rng.Float64()*2 - 1) * s.scatterRadius,
			Z: (s.rng.Float64()*2 - 1) * s.scatterRadius,
		}
		if p.Length() <= s.scatterRadius {
			return p
		}
	}
}

// TreeSurfacePosition 采样树形位置：高度均匀、方位角均匀
// 放置半径 = coneRadius(y) × [biasMin, biasMax] 内的随机系数，
// 窄带保证实体贴着锥面而不是填满锥体内部
func (s *Sampler) TreeSurfacePosition() vec.Vec3 {
	return s.TreeSurfacePositionInBand(0, 1)
}

// TreeSurfacePositionInBand 在归一化高度带 [minH, maxH] 内采样树形位置
// 用于按类别覆盖高度分布，例如树脚填充带
func (s *Sampler) TreeSurfacePositionInBand(minH, maxH float64) vec.Vec3 {
	h := minH + s.rng.Float64()*(maxH-minH)
	angle := s.rng.Float64() * 2 * math.Pi
	return s.conePoint(h, angle)
}

// FoliagePosition 采样针叶位置：高度均匀、方位角按黄金角递增
// 每次调用推进内部螺旋序号，同一采样器上连续调用形成准均匀螺旋
func (s *Sampler) FoliagePosition() vec.Vec3 {
	h := s.rng.Float64()
	angle := float64(s.spiralIndex) * goldenAngle
	s.spiralIndex++
	return s.conePoint(h, angle)
}

// conePoint 按归一化高度与方位角生成锥面附近的点
func (s *Sampler) conePoint(normalizedH, angle float64) vec.Vec3 {
	y := normalizedH * s.cone.Height
	bias := s.cone.SurfaceBiasMin + s.rng.Float64()*(s.cone.SurfaceBiasMax-s.cone.SurfaceBiasMin)
	r := s.cone.RadiusAt(y) * bias
	return vec.Vec3{
		X: r * math.Cos(angle),
		Y: y,
		Z: r * math.Sin(angle),
	}
}
