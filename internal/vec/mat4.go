package vec

import "math"

// Mat4 4x4 变换矩阵（行主序）
//
// 本包只处理 TRS（平移-旋转-缩放）型仿射变换，
// 最后一行恒为 [0 0 0 1]，求逆使用仿射快速路径。
type Mat4 [16]float64

// Identity 单位矩阵
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation 平移矩阵
func Translation(t Vec3) Mat4 {
	m := Identity()
	m[3] = t.X
	m[7] = t.Y
	m[11] = t.Z
	return m
}

// RotationY 绕 Y 轴旋转矩阵
// angle 为弧度，正值为从 +Z 向 +X 方向旋转
func RotationY(angle float64) Mat4 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// Scaling 均匀缩放矩阵
func Scaling(s float64) Mat4 {
	return Mat4{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}
}

// Mul 矩阵乘法（m × o）
// 变换复合顺序：先应用 o，再应用 m
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// MulPoint 将矩阵应用于点（w=1）
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// InverseAffine 仿射矩阵求逆
//
// 将矩阵分解为线性部分 A（左上 3x3）和平移 t，
// 逆矩阵为 [A⁻¹, -A⁻¹t]。线性部分用伴随矩阵法求逆。
// 奇异矩阵（行列式为 0）返回单位矩阵，调用方的变换保持原样。
func (m Mat4) InverseAffine() Mat4 {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]

	// 余子式
	c00 := a11*a22 - a12*a21
	c01 := a12*a20 - a10*a22
	c02 := a10*a21 - a11*a20

	det := a00*c00 + a01*c01 + a02*c02
	if det == 0 {
		return Identity()
	}
	inv := 1 / det

	// A⁻¹（伴随矩阵转置 / det）
	b00 := c00 * inv
	b01 := (a02*a21 - a01*a22) * inv
	b02 := (a01*a12 - a02*a11) * inv
	b10 := c01 * inv
	b11 := (a00*a22 - a02*a20) * inv
	b12 := (a02*a10 - a00*a12) * inv
	b20 := c02 * inv
	b21 := (a01*a20 - a00*a21) * inv
	b22 := (a00*a11 - a01*a10) * inv

	tx, ty, tz := m[3], m[7], m[11]

	return Mat4{
		b00, b01, b02, -(b00*tx + b01*ty + b02*tz),
		b10, b11, b12, -(b10*tx + b11*ty + b12*tz),
		b20, b21, b22, -(b20*tx + b21*ty + b22*tz),
		0, 0, 0, 1,
	}
}

// PinLocal 计算子节点的局部变换，使其世界变换固定为 desiredWorld
//
// 用于照片的"世界空间钉住"：父容器每帧都在旋转，
// 而被放大的照片需要在屏幕上保持静止。
// 关系式：parentWorld × local = desiredWorld
// 解得：local = parentWorld⁻¹ × desiredWorld
func PinLocal(parentWorld, desiredWorld Mat4) Mat4 {
	return parentWorld.InverseAffine().Mul(desiredWorld)
}
