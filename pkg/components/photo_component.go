package components

import (
	"github.com/gonewx/startree/internal/vec"
	"github.com/hajimehoshi/ebiten/v2"
)

// PhotoComponent 上传照片的相框状态
type PhotoComponent struct {
	// Image 照片纹理
	Image *ebiten.Image
	// AspectRatio 原图宽高比，渲染相框时必须保持
	AspectRatio float64

	// Pinned 是否处于展示（钉住）状态
	// 缩放信号超过阈值时，照片被钉在观察者前方的固定位姿，
	// 父容器继续旋转也不影响它在屏幕上的位置
	Pinned bool
	// PinnedLocal 钉住状态下每帧解出的局部变换
	PinnedLocal vec.Mat4
}
