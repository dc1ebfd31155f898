// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Mode 定义全局展示模式
// 整个场景只有两个合法状态：散落与聚合成树
type Mode int

const (
	// ModeScattered 散落模式：所有实体漂浮在球形空间内
	ModeScattered Mode = iota
	// ModeTreeShape 树形模式：所有实体聚合到圆锥树面上
	ModeTreeShape
)

// IsValid 检查模式值是否合法
// 所有外部输入（手势、UI）必须在边界处调用此方法，
// 非法值一律拒绝，不进入动画驱动
func (m Mode) IsValid() bool {
	return m == ModeScattered || m == ModeTreeShape
}

// Toggle 返回另一个模式
func (m Mode) Toggle() Mode {
	if m == ModeScattered {
		return ModeTreeShape
	}
	return ModeScattered
}

// String 返回模式的字符串表示
func (m Mode) String() string {
	switch m {
	case ModeScattered:
		return "Scattered"
	case ModeTreeShape:
		return "TreeShape"
	default:
		return "Unknown"
	}
}
