// Package components 定义所有纯数据组件
// 组件不包含任何方法逻辑（ECS 原则），由 pkg/systems 中的系统读写
package components

import (
	"github.com/gonewx/startree/internal/vec"
)

// TransformComponent 实体的空间状态
//
// Scatter 和 Tree 在实体创建时各计算一次，之后不可变；
// 只有 Current/RotationY 每帧变化，且仅由动画系统写入。
type TransformComponent struct {
	// Scatter 散落位置（创建时分配，不可变）
	Scatter vec.Vec3
	// Tree 树形位置（创建时由锥面采样计算，不可变）
	Tree vec.Vec3
	// Current 实时位置（每帧由动画系统用指数平滑更新）
	Current vec.Vec3

	// RotationY 实时朝向角（弧度，绕 Y 轴）
	RotationY float64
	// SpinSpeed 散落模式下的持续自转速度（弧度/秒）
	SpinSpeed float64

	// Weight 平滑速率缩放系数
	// 重的实体向目标收敛慢，模拟轻重物体不同的落位速度
	Weight float64
	// Phase 相位偏移（秒），用于错开各实体的摇摆动画
	Phase float64
}
