package layout

import "github.com/gonewx/startree/internal/vec"

// Placement 一个已接受的放置：位置与有效碰撞半径
type Placement struct {
	Pos    vec.Vec3
	Radius float64
}

// PlacerSpec 碰撞感知放置器的参数
type PlacerSpec struct {
	// AttemptBudget 每个条目的最大候选尝试次数
	AttemptBudget int
	// AcceptFactor 接受系数
	// 候选到每个已放置条目的距离须 ≥ AcceptFactor × (rA + rB)
	// 小于 1 时允许轻微嵌套，视觉密度更高
	AcceptFactor float64
}

// Placer 有界迭代的拒绝采样放置器
//
// 维护已放置的 (位置, 半径) 列表；新条目反复采样候选位置，
// 接受第一个通过碰撞测试的候选。预算耗尽时条目被丢弃，
// 最终数量减少——这是接受的行为，不是错误。
type Placer struct {
	spec    PlacerSpec
	placed  []Placement
	dropped int
}

// NewPlacer 创建放置器
func NewPlacer(spec PlacerSpec) *Placer {
	return &Placer{spec: spec}
}

// TryPlace 尝试为半径 radius 的条目找一个无碰撞位置
//
// sample 由调用方提供（通常是 Sampler.TreeSurfacePosition 或带高度带的变体）。
// 成功返回 (位置, true) 并登记该放置；预算耗尽返回 (零值, false)。
func (p *Placer) TryPlace(radius float64, sample func() vec.Vec3) (vec.Vec3, bool) {
	for attempt := 0; attempt < p.spec.AttemptBudget; attempt++ {
		candidate := sample()
		if p.fits(candidate, radius) {
			p.placed = append(p.placed, Placement{Pos: candidate, Radius: radius})
			return candidate, true
		}
	}
	p.dropped++
	return vec.Vec3{}, false
}

// fits 检查候选位置与所有已放置条目的距离约束
func (p *Placer) fits(candidate vec.Vec3, radius float64) bool {
	for _, pl := range p.placed {
		minDist := p.spec.AcceptFactor * (radius + pl.Radius)
		if candidate.Dist(pl.Pos) < minDist {
			return false
		}
	}
	return true
}

// Placements 返回所有已接受的放置
func (p *Placer) Placements() []Placement {
	return p.placed
}

// Dropped 返回因预算耗尽被丢弃的条目数
func (p *Placer) Dropped() int {
	return p.dropped
}
