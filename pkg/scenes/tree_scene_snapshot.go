package scenes

import (
	"image"
	"log"
	"os"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleSnapshotKey F12 请求保存当前画面
// 像素读取必须在 Draw 中进行，这里只置位标志
func (s *TreeScene) handleSnapshotKey() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		s.snapshotPending = true
	}
}

// captureSnapshot 把渲染完成的画面编码为 WebP 写到工作目录
func (s *TreeScene) captureSnapshot(screen *ebiten.Image) {
	bounds := screen.Bounds()
	img := image.NewRGBA(bounds)
	screen.ReadPixels(img.Pix)

	name := "startree_" + time.Now().Format("20060102_150405") + ".webp"
	f, err := os.Create(name)
	if err != nil {
		log.Printf("[TreeScene] Failed to create snapshot file: %v", err)
		return
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		log.Printf("[TreeScene] Failed to encode snapshot: %v", err)
		return
	}
	log.Printf("[TreeScene] Snapshot saved: %s", name)
}
