package scenes

import (
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/startree/pkg/entities"
)

// handleDroppedFiles 把拖进窗口的图片变成树上的照片相框
//
// 解码失败的文件只记日志并丢弃，不影响其余上传和已有实体。
func (s *TreeScene) handleDroppedFiles() {
	dropped := ebiten.DroppedFiles()
	if dropped == nil {
		return
	}

	err := fs.WalkDir(dropped, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(dropped, path)
		if err != nil {
			log.Printf("[TreeScene] Failed to read dropped file %q: %v", path, err)
			return nil
		}

		photo, err := s.resourceManager.DecodePhoto(data)
		if err != nil {
			log.Printf("[TreeScene] Dropped file %q is not a usable image: %v", path, err)
			return nil
		}

		entities.NewPhotoEntity(s.entityManager, s.rng, s.sampler, s.placer, s.ornamentConfig, photo)
		s.photoCount++
		log.Printf("[TreeScene] Photo added from %q (aspect %.3f), %d photos total",
			path, photo.AspectRatio, s.photoCount)
		return nil
	})
	if err != nil {
		log.Printf("[TreeScene] Failed to walk dropped files: %v", err)
	}
}
