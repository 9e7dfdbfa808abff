package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhishek98s/LITMARK-BACKEND2/config"

	"github.com/disintegration/imaging"
)

func IsAllowedImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range config.AppConfig.Storage.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func GenerateThumbnail(srcPath, dstPath string) error {
	cfg := config.AppConfig.Thumbnail

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create thumbnail dir failed: %w", err)
	}

	img, err := imaging.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open image failed: %w", err)
	}

	thumb := imaging.Fit(img, cfg.Width, cfg.Height, imaging.Lanczos)
	return imaging.Save(thumb, dstPath, imaging.JPEGQuality(cfg.Quality))
}
