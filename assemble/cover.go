package assemble

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"yonder-parse/model"
)

var coverCandidates = []string{"cover.png", "cover.jpg", "cover.jpeg"}

// ResolveCover loads the configured cover image, or the first cover.* image
// found in dir. A configured cover that cannot be loaded means no cover.
func (a *Assembler) ResolveCover(dir string) *model.Cover {
	if configured := a.cfg.CoverImage; configured != "" {
		if strings.HasPrefix(configured, "http://") || strings.HasPrefix(configured, "https://") {
			data, err := a.client.Download(configured)
			if err != nil {
				a.logger.Debug("Configured cover unavailable", zap.String("cover", configured), zap.Error(err))
				return nil
			}
			return &model.Cover{FileName: path.Base(strings.SplitN(configured, "?", 2)[0]), Data: data}
		}
		p := configured
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		cover, err := readCover(p)
		if err != nil {
			a.logger.Debug("Configured cover unavailable", zap.String("cover", p), zap.Error(err))
			return nil
		}
		return cover
	}

	for _, name := range coverCandidates {
		cover, err := readCover(filepath.Join(dir, name))
		if err == nil {
			return cover
		}
	}
	return nil
}

func readCover(p string) (*model.Cover, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return &model.Cover{FileName: filepath.Base(p), Data: data}, nil
}
