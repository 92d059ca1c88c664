package images

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/pkg/drive"
)

const (
	contentHost   = "https://lh3.googleusercontent.com"
	thumbnailHost = "https://drive.google.com"
)

// ViewURL synthesizes the stable public viewing URL for a drive file. No
// reachability check is performed; fallback rendering is a presentation
// concern.
func ViewURL(fileID string) string {
	return contentHost + "/d/" + fileID + "=w1000"
}

// ThumbnailURL synthesizes the public thumbnail URL for a drive file.
func ThumbnailURL(fileID string) string {
	return thumbnailHost + "/thumbnail?id=" + fileID + "&sz=w400"
}

// Publisher classifies a business folder's files and ensures each selected
// image is publicly readable. Files are processed one at a time behind a
// fixed-rate limiter to stay under Drive API quotas.
type Publisher struct {
	client  drive.Client
	limiter *rate.Limiter
}

// NewPublisher creates a Publisher. A ratePerSecond of 0 disables pacing.
func NewPublisher(client drive.Client, ratePerSecond float64) *Publisher {
	p := &Publisher{client: client}
	if ratePerSecond > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}
	return p
}

// Process filters, partitions and publishes a business's drive files,
// returning classified images with public URLs. A permission-check failure
// drops just that file; a failed grant is logged and the file is kept with
// its best-available URL. The business proceeds with whatever subset
// succeeded.
func (p *Publisher) Process(ctx context.Context, businessName string, files []drive.File) []model.ClassifiedImage {
	imageFiles := FilterImages(files)
	if len(imageFiles) == 0 {
		return nil
	}

	logo, banner, additional := Partition(imageFiles)

	zap.L().Debug("images: processing business folder",
		zap.String("business", businessName),
		zap.Int("image_files", len(imageFiles)),
	)

	var out []model.ClassifiedImage
	appendPublished := func(f *drive.File, typ model.ImageType) {
		if f == nil {
			return
		}
		img, ok := p.publish(ctx, businessName, *f, typ)
		if ok {
			out = append(out, img)
		}
	}

	appendPublished(logo, model.ImageTypeLogo)
	appendPublished(banner, model.ImageTypeBanner)
	for i := range additional {
		appendPublished(&additional[i], model.ImageTypeOther)
	}

	return out
}

func (p *Publisher) publish(ctx context.Context, businessName string, f drive.File, typ model.ImageType) (model.ClassifiedImage, bool) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			zap.L().Warn("images: rate limiter interrupted",
				zap.String("business", businessName),
				zap.Error(err),
			)
			return model.ClassifiedImage{}, false
		}
	}

	public, err := p.client.IsPublic(ctx, f.ID)
	if err != nil {
		zap.L().Warn("images: permission check failed, skipping file",
			zap.String("business", businessName),
			zap.String("file", f.Name),
			zap.Error(err),
		)
		return model.ClassifiedImage{}, false
	}

	if !public {
		if err := p.client.MakePublic(ctx, f.ID); err != nil {
			// Best effort: the file keeps its synthesized URL either way.
			zap.L().Warn("images: could not make file public",
				zap.String("business", businessName),
				zap.String("file", f.Name),
				zap.Error(err),
			)
		}
	}

	return model.ClassifiedImage{
		Name:         f.Name,
		Type:         typ,
		DriveID:      f.ID,
		URL:          ViewURL(f.ID),
		ThumbnailURL: ThumbnailURL(f.ID),
	}, true
}
