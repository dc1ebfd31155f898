package game

import (
	"bytes"
	"fmt"
	"image"
	"log"

	// 注册上传照片支持的解码格式
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/webp"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// maxPhotoTextureSize 照片纹理的最大边长（像素）
// 上传的原图可能非常大，超过时按比例缩小，保持宽高比不变
const maxPhotoTextureSize = 512

// PhotoImage 解码后的上传照片
type PhotoImage struct {
	// Image 渲染用纹理（可能已缩小）
	Image *ebiten.Image
	// Width 原图宽度（像素）
	Width int
	// Height 原图高度（像素）
	Height int
	// AspectRatio 原图宽高比
	// 渲染层必须用它决定相框尺寸，保证 16:9 的照片显示为 16:9
	AspectRatio float64
}

// ResourceManager 资源管理器
// 负责上传照片的解码与纹理准备
type ResourceManager struct{}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{}
}

// DecodePhoto 解码上传的图片数据
//
// 支持 PNG/JPEG/GIF/WebP/TGA。解码失败返回错误，
// 调用方记录日志并丢弃该上传，不影响其余系统。
func (rm *ResourceManager) DecodePhoto(data []byte) (*PhotoImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("photo has zero dimension: %dx%d", w, h)
	}

	// 超大图按最长边缩到纹理上限，宽高比不变
	scaled := img
	if w > maxPhotoTextureSize || h > maxPhotoTextureSize {
		scaled = downscale(img, maxPhotoTextureSize)
	}

	log.Printf("[Resource] Decoded photo: %s %dx%d (aspect %.3f)", format, w, h, float64(w)/float64(h))

	return &PhotoImage{
		Image:       ebiten.NewImageFromImage(scaled),
		Width:       w,
		Height:      h,
		AspectRatio: float64(w) / float64(h),
	}, nil
}

// downscale 把图片按最长边缩到 maxSize，使用 Catmull-Rom 重采样
func downscale(img image.Image, maxSize int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var dw, dh int
	if w >= h {
		dw = maxSize
		dh = h * maxSize / w
	} else {
		dh = maxSize
		dw = w * maxSize / h
	}
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
