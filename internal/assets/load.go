package assets

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gamestack/internal/config"
	"github.com/Faultbox/gamestack/internal/graphics"
	"github.com/Faultbox/gamestack/internal/logger"
)

// DefaultFontName is the name the built-in font is registered under when the
// config does not provide one.
const DefaultFontName = "default"

// Load builds a table from the asset section of the config. Every listed file
// must load; the first failure is returned.
func Load(cfg config.AssetsConfig) (*Table, error) {
	t := NewTable()

	for name, path := range cfg.Images {
		img, err := graphics.LoadImage(path)
		if err != nil {
			t.Close()
			return nil, fmt.Errorf("loading image %q: %w", name, err)
		}
		t.AddImage(name, img)
		w, h := img.Size()
		logger.Debug("image loaded",
			zap.String("name", name),
			zap.String("path", path),
			zap.Int("width", w),
			zap.Int("height", h),
		)
	}

	for name, fc := range cfg.Fonts {
		size := fc.Size
		if size <= 0 {
			size = cfg.DefaultFontSize
		}
		f, err := graphics.LoadFont(fc.Path, size)
		if err != nil {
			t.Close()
			return nil, fmt.Errorf("loading font %q: %w", name, err)
		}
		t.AddFont(name, f)
		logger.Debug("font loaded",
			zap.String("name", name),
			zap.String("path", fc.Path),
			zap.Float64("size", size),
		)
	}

	if _, ok := t.fonts[DefaultFontName]; !ok {
		f, err := graphics.DefaultFont(cfg.DefaultFontSize)
		if err != nil {
			t.Close()
			return nil, fmt.Errorf("loading built-in font: %w", err)
		}
		t.AddFont(DefaultFontName, f)
	}

	logger.Info("assets loaded",
		zap.Int("images", len(t.images)),
		zap.Int("fonts", len(t.fonts)),
	)
	return t, nil
}
