// Package vec 提供可视化核心使用的三维向量与矩阵运算
//
// 离散实体（挂饰、照片、星星）使用 float64 的 Vec3/Mat4；
// 高密度针叶粒子场使用 float32 的 Vec3f（见 vec3f.go），
// 以便数万个点的位置缓冲占用减半。
package vec

import "math"

// Vec3 三维向量（float64）
type Vec3 struct {
	X, Y, Z float64
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 标量缩放
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length 向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthXZ 向量在 XZ 平面上的长度
// 即该点到 Y 轴（树的中轴）的距离，用于锥面贴合校验
func (v Vec3) LengthXZ() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// Dist 两点间欧氏距离
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Lerp 线性插值
// t=0 返回 v，t=1 返回 o
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Approach 指数平滑逼近目标
// 公式：v += (target - v) * rate
// rate ∈ [0, 1]；rate=1 时一步到位，rate=0 时原地不动。
// 当 v == target 时为不动点，重复调用保持不变。
func (v Vec3) Approach(target Vec3, rate float64) Vec3 {
	return Vec3{
		X: v.X + (target.X-v.X)*rate,
		Y: v.Y + (target.Y-v.Y)*rate,
		Z: v.Z + (target.Z-v.Z)*rate,
	}
}

// Normalize 归一化为单位向量
// 零向量返回零向量（不产生 NaN）
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}
