// Package images classifies a business's drive files into logo, banner and
// additional images and makes them publicly viewable.
package images

import (
	"path/filepath"
	"strings"

	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/pkg/drive"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// IsImage reports whether a drive file looks like an image, by MIME type or
// filename extension.
func IsImage(f drive.File) bool {
	if strings.HasPrefix(f.MimeType, "image/") {
		return true
	}
	return imageExtensions[strings.ToLower(filepath.Ext(f.Name))]
}

// FilterImages keeps only image files, preserving folder listing order.
func FilterImages(files []drive.File) []drive.File {
	var out []drive.File
	for _, f := range files {
		if IsImage(f) {
			out = append(out, f)
		}
	}
	return out
}

// Partition splits image files into the privileged logo and banner plus the
// remaining additional images. The logo is the first file whose name
// contains "logo"; the banner is the first remaining file containing
// "banner". Everything else is additional, in folder listing order, with no
// upper bound on count.
func Partition(files []drive.File) (logo, banner *drive.File, additional []drive.File) {
	logoIdx, bannerIdx := -1, -1
	for i, f := range files {
		name := strings.ToLower(f.Name)
		if logoIdx == -1 && strings.Contains(name, "logo") {
			logoIdx = i
			continue
		}
		if bannerIdx == -1 && strings.Contains(name, "banner") {
			bannerIdx = i
		}
	}

	for i := range files {
		switch i {
		case logoIdx:
			logo = &files[i]
		case bannerIdx:
			banner = &files[i]
		default:
			additional = append(additional, files[i])
		}
	}
	return logo, banner, additional
}

// TypeOf classifies a filename by substring heuristic.
func TypeOf(name string) model.ImageType {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "logo") {
		return model.ImageTypeLogo
	}
	if strings.Contains(lower, "banner") {
		return model.ImageTypeBanner
	}
	return model.ImageTypeOther
}
