package catalog

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	thumbWidth  = 240
	thumbHeight = 300
)

// generateThumbnails renders a thumbnail for every imported product image
// found under mediaDir, into mediaDir/thumbs. Missing or undecodable images
// are warnings, not failures.
func generateThumbnails(mediaDir string, items []ProductInput, res *ImportResult) int {
	thumbDir := filepath.Join(mediaDir, "thumbs")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("thumbs dir: %v", err))
		return 0
	}

	done := 0
	for _, item := range items {
		if item.Image == "" {
			continue
		}
		src := filepath.Join(mediaDir, item.Image)
		img, err := openImage(src)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", item.SKU, err))
			continue
		}
		thumb := imaging.Fit(img, thumbWidth, thumbHeight, imaging.Lanczos)
		base := strings.TrimSuffix(filepath.Base(item.Image), filepath.Ext(item.Image))
		dst := filepath.Join(thumbDir, base+".jpg")
		if err := imaging.Save(thumb, dst, imaging.JPEGQuality(85)); err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: save thumb: %v", item.SKU, err))
			continue
		}
		done++
	}
	return done
}

// openImage decodes a product image; .webp goes through the webp decoder,
// everything else through imaging.
func openImage(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return webp.Decode(f)
	}
	return imaging.Open(path)
}
