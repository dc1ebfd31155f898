// Package gesture 实现手部关键点到控制状态的映射
//
// 本包只消费关键点几何：每个可用视频帧零到两只手，
// 每只手是归一化图像空间（0~1）内的 21 个 3D 点。
// 关键点推理本身（摄像头 + 模型）在模块之外，
// 通过 Provider 接口以回放或外部进程流的方式接入。
package gesture

// 关键点序号（与通用 21 点手部模型一致）
const (
	LandmarkWrist     = 0
	LandmarkThumbTip  = 4
	LandmarkIndexTip  = 8
	LandmarkMiddleTip = 12
	LandmarkRingTip   = 16
	LandmarkPinkyTip  = 20

	// LandmarkCount 每只手的关键点总数
	LandmarkCount = 21
)

// fingertips 参与张开度计算的五个指尖序号
var fingertips = []int{
	LandmarkThumbTip, LandmarkIndexTip, LandmarkMiddleTip,
	LandmarkRingTip, LandmarkPinkyTip,
}

// Point 归一化图像空间中的一个关键点
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Dist 两个关键点之间的欧氏距离
func (p Point) Dist(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	dz := p.Z - o.Z
	return sqrt(dx*dx + dy*dy + dz*dz)
}

// Hand 单只手的关键点集合
type Hand struct {
	Landmarks []Point `yaml:"landmarks" json:"landmarks"`
}

// Valid 检查关键点数量是否完整
// 不完整的手（推理半途丢失）按无手处理
func (h Hand) Valid() bool {
	return len(h.Landmarks) == LandmarkCount
}

// Frame 一帧的全部手部数据
// Hands 为空表示未检测到手
type Frame struct {
	Hands []Hand `yaml:"hands" json:"hands"`
}
