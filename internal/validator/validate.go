// Package validator judges business records against the fixed completeness
// requirements and aggregates verdicts across a directory.
package validator

import (
	"math"
	"strings"

	"github.com/sells-group/directory-cli/internal/model"
)

// Validated pairs a business with its completeness verdict.
type Validated struct {
	model.Business
	Validation model.ValidationResult `json:"validation"`
}

// Validate computes the completeness verdict for one business. It is a pure
// function: the same input always yields the same result and the business is
// never modified. Incompleteness is data, not an error.
func Validate(b model.Business) model.ValidationResult {
	details := analyzeImages(b.Images)

	req := model.Requirements{
		Name:                present(b.Name),
		Address:             present(b.Address),
		Phone:               present(b.Phone),
		Website:             present(b.Website),
		YearFounded:         b.YearFounded != nil || present(b.YearFoundedRaw),
		Email:               present(b.Email),
		MainServices:        len(b.MainServices) > 0,
		OtherServices:       len(b.OtherServices) > 0,
		CompanySize:         b.CompanySize != nil || present(b.CompanySizeRaw),
		ServiceArea:         present(b.ServiceArea),
		Description:         present(b.Description),
		ContractorType:      present(b.ContractorType),
		Gmail:               present(b.Gmail),
		GmailAppPassword:    present(b.GmailAppPassword),
		HasLogo:             details.HasLogo,
		HasBanner:           details.HasBanner,
		HasAdditionalImages: details.AdditionalCount >= 1,
	}

	var missing []string
	met := 0
	for _, r := range req.List() {
		if r.Met {
			met++
		} else {
			missing = append(missing, r.Label)
		}
	}

	return model.ValidationResult{
		IsComplete:           len(missing) == 0,
		Missing:              missing,
		Requirements:         req,
		CompletionPercentage: int(math.Round(100 * float64(met) / model.RequirementCount)),
		ImageDetails:         details,
	}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// analyzeImages finds the privileged logo and banner among a business's
// classified images and counts the rest as additional.
func analyzeImages(images []model.ClassifiedImage) model.ImageDetails {
	details := model.ImageDetails{Total: len(images)}

	for i := range images {
		img := &images[i]
		lower := strings.ToLower(img.Name)
		switch {
		case details.LogoImage == nil && (img.Type == model.ImageTypeLogo || strings.Contains(lower, "logo")):
			details.LogoImage = img
		case details.BannerImage == nil && (img.Type == model.ImageTypeBanner || strings.Contains(lower, "banner")):
			details.BannerImage = img
		default:
			details.AdditionalImages = append(details.AdditionalImages, *img)
		}
	}

	details.HasLogo = details.LogoImage != nil
	details.HasBanner = details.BannerImage != nil
	details.AdditionalCount = len(details.AdditionalImages)
	return details
}
