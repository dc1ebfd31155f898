package config

// 显示配置常量
// 本文件定义窗口尺寸与软件投影的相机参数

const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// CameraDistance 相机到场景原点的距离（世界单位）
	// 透视投影时作为视深基准
	CameraDistance = 42.0

	// CameraHeight 相机高度（世界单位）
	// 略高于树的半高，俯视角度更自然
	CameraHeight = 10.0

	// ProjectionFocal 透视投影焦距（像素）
	// screenX = ProjectionFocal * x / (z + CameraDistance)
	ProjectionFocal = 720.0

	// AutoRotateSpeed 场景自动旋转角速度（弧度/秒）
	AutoRotateSpeed = 0.25

	// RotationBiasGain 旋转偏置对角速度的增益（弧度/秒）
	// 手势的水平偏移信号乘以该值叠加到自动旋转上
	RotationBiasGain = 1.6
)
