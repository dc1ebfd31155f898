package vec

import "github.com/chewxy/math32"

// Vec3f 三维向量（float32）
// 专用于针叶粒子场的高密度位置缓冲
type Vec3f struct {
	X, Y, Z float32
}

// Vec3fOf 从 float64 向量转换
func Vec3fOf(v Vec3) Vec3f {
	return Vec3f{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3Of 转换为 float64 向量
func (v Vec3f) Vec3() Vec3 {
	return Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

// Lerp 线性插值
func (v Vec3f) Lerp(o Vec3f, t float32) Vec3f {
	return Vec3f{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Length 向量长度
func (v Vec3f) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthXZ 向量在 XZ 平面上的长度（到 Y 轴的距离）
func (v Vec3f) LengthXZ() float32 {
	return math32.Sqrt(v.X*v.X + v.Z*v.Z)
}
