package validator

import (
	"math"
	"sort"

	"github.com/sells-group/directory-cli/internal/model"
)

// ImageStats counts image coverage across a directory.
type ImageStats struct {
	WithLogo              int `json:"with_logo"`
	WithBanner            int `json:"with_banner"`
	WithBothLogoAndBanner int `json:"with_both_logo_and_banner"`
	// WithAllRequiredImages counts records satisfying the three image
	// requirements only, independent of the data fields. Do not conflate
	// with Complete.
	WithAllRequiredImages int `json:"with_all_required_images"`
}

// Statistics summarizes a directory-wide validation pass.
type Statistics struct {
	Total          int        `json:"total"`
	Complete       int        `json:"complete"`
	Incomplete     int        `json:"incomplete"`
	CompletionRate int        `json:"completion_rate"`
	ImageStats     ImageStats `json:"image_stats"`
}

// FilterResult partitions a directory into complete and incomplete records.
type FilterResult struct {
	Complete   []Validated `json:"complete"`
	Incomplete []Validated `json:"incomplete"`
	Statistics Statistics  `json:"statistics"`
}

// Filter validates every business and splits the collection by verdict.
func Filter(businesses []model.Business) FilterResult {
	result := FilterResult{}

	for _, b := range businesses {
		v := Validate(b)

		if v.ImageDetails.HasLogo {
			result.Statistics.ImageStats.WithLogo++
		}
		if v.ImageDetails.HasBanner {
			result.Statistics.ImageStats.WithBanner++
		}
		if v.ImageDetails.HasLogo && v.ImageDetails.HasBanner {
			result.Statistics.ImageStats.WithBothLogoAndBanner++
		}
		if v.Requirements.HasLogo && v.Requirements.HasBanner && v.Requirements.HasAdditionalImages {
			result.Statistics.ImageStats.WithAllRequiredImages++
		}

		validated := Validated{Business: b, Validation: v}
		if v.IsComplete {
			result.Complete = append(result.Complete, validated)
		} else {
			result.Incomplete = append(result.Incomplete, validated)
		}
	}

	result.Statistics.Total = len(businesses)
	result.Statistics.Complete = len(result.Complete)
	result.Statistics.Incomplete = len(result.Incomplete)
	result.Statistics.CompletionRate = percentage(result.Statistics.Complete, result.Statistics.Total)

	return result
}

// FieldCount is one row of the missing-fields histogram.
type FieldCount struct {
	Field      string `json:"field"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// MissingFieldsHistogram counts how often each requirement is missing,
// sorted descending by count. Ties keep requirement declaration order, so
// the output is stable across runs.
func MissingFieldsHistogram(businesses []model.Business) []FieldCount {
	counts := make(map[string]int)
	for _, b := range businesses {
		for _, field := range Validate(b).Missing {
			counts[field]++
		}
	}

	var out []FieldCount
	for _, r := range (model.Requirements{}).List() {
		if n := counts[r.Label]; n > 0 {
			out = append(out, FieldCount{
				Field:      r.Label,
				Count:      n,
				Percentage: percentage(n, len(businesses)),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// ImageTypeDistribution tallies classified images by role.
type ImageTypeDistribution struct {
	Logos      int `json:"logos"`
	Banners    int `json:"banners"`
	Additional int `json:"additional"`
	Total      int `json:"total"`
}

// ImageAnalysis summarizes image coverage across a directory.
type ImageAnalysis struct {
	TotalBusinesses           int                   `json:"total_businesses"`
	BusinessesWithImages      int                   `json:"businesses_with_images"`
	BusinessesWithLogo        int                   `json:"businesses_with_logo"`
	BusinessesWithBanner      int                   `json:"businesses_with_banner"`
	BusinessesWithBoth        int                   `json:"businesses_with_both"`
	BusinessesWithAllRequired int                   `json:"businesses_with_all_required"`
	AverageImagesPerBusiness  float64               `json:"average_images_per_business"`
	ImageTypeDistribution     ImageTypeDistribution `json:"image_type_distribution"`
}

// AnalyzeImages computes directory-wide image statistics.
func AnalyzeImages(businesses []model.Business) ImageAnalysis {
	a := ImageAnalysis{TotalBusinesses: len(businesses)}
	totalImages := 0

	for _, b := range businesses {
		v := Validate(b)
		d := v.ImageDetails

		if d.Total > 0 {
			a.BusinessesWithImages++
		}
		if d.HasLogo {
			a.BusinessesWithLogo++
			a.ImageTypeDistribution.Logos++
		}
		if d.HasBanner {
			a.BusinessesWithBanner++
			a.ImageTypeDistribution.Banners++
		}
		if d.HasLogo && d.HasBanner {
			a.BusinessesWithBoth++
		}
		if v.Requirements.HasLogo && v.Requirements.HasBanner && v.Requirements.HasAdditionalImages {
			a.BusinessesWithAllRequired++
		}

		totalImages += d.Total
		a.ImageTypeDistribution.Additional += d.AdditionalCount
	}

	a.ImageTypeDistribution.Total = totalImages
	if len(businesses) > 0 {
		a.AverageImagesPerBusiness = math.Round(10*float64(totalImages)/float64(len(businesses))) / 10
	}
	return a
}

// Report is the full output of one directory analysis.
type Report struct {
	Complete               []Validated   `json:"complete"`
	Incomplete             []Validated   `json:"incomplete"`
	Statistics             Statistics    `json:"statistics"`
	MissingFields          []FieldCount  `json:"missing_fields"`
	Images                 ImageAnalysis `json:"images"`
	CanProceedToAutomation bool          `json:"can_proceed_to_automation"`
}

// BuildReport runs the full validation pass over a directory. Automation
// may proceed as soon as at least one record is complete; only complete
// records are ever handed to the bot.
func BuildReport(businesses []model.Business) Report {
	filtered := Filter(businesses)
	return Report{
		Complete:               filtered.Complete,
		Incomplete:             filtered.Incomplete,
		Statistics:             filtered.Statistics,
		MissingFields:          MissingFieldsHistogram(businesses),
		Images:                 AnalyzeImages(businesses),
		CanProceedToAutomation: filtered.Statistics.Complete > 0,
	}
}

func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
