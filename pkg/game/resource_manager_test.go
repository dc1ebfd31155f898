package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

// encodeTestPNG 生成指定尺寸的纯色 PNG
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("生成测试 PNG 失败: %v", err)
	}
	return buf.Bytes()
}

// TestDecodePhotoPreservesAspect 解码后宽高比与原图一致
func TestDecodePhotoPreservesAspect(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"横向 16:9", 160, 90},
		{"纵向 3:4", 96, 128},
		{"正方形", 64, 64},
	}

	rm := NewResourceManager()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photo, err := rm.DecodePhoto(encodeTestPNG(t, tt.w, tt.h))
			if err != nil {
				t.Fatalf("解码失败: %v", err)
			}
			want := float64(tt.w) / float64(tt.h)
			if math.Abs(photo.AspectRatio-want) > 1e-9 {
				t.Errorf("宽高比应为 %v, 实际 %v", want, photo.AspectRatio)
			}
			if photo.Width != tt.w || photo.Height != tt.h {
				t.Errorf("原始尺寸应为 %dx%d, 实际 %dx%d", tt.w, tt.h, photo.Width, photo.Height)
			}
		})
	}
}

// TestDecodePhotoRejectsGarbage 非图片数据返回错误
func TestDecodePhotoRejectsGarbage(t *testing.T) {
	rm := NewResourceManager()
	if _, err := rm.DecodePhoto([]byte("definitely not an image")); err == nil {
		t.Error("非图片数据应返回错误")
	}
}

// TestDownscaleKeepsAspect 超大图缩到上限后宽高比不变
func TestDownscaleKeepsAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1600, 900))
	dst := downscale(src, maxPhotoTextureSize)

	b := dst.Bounds()
	if b.Dx() != maxPhotoTextureSize {
		t.Errorf("最长边应缩到 %d, 实际 %d", maxPhotoTextureSize, b.Dx())
	}
	want := 900 * maxPhotoTextureSize / 1600
	if b.Dy() != want {
		t.Errorf("短边应为 %d, 实际 %d", want, b.Dy())
	}
}
