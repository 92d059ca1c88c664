package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/directory-cli/internal/model"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	incomplete := model.Business{BusinessRecord: model.BusinessRecord{
		Name:  "Beta LLC",
		Email: "b@beta.test",
	}}
	incomplete.Images = []model.ClassifiedImage{
		{Name: "beta-logo.png", Type: model.ImageTypeLogo},
	}

	result := Filter([]model.Business{completeBusiness(), incomplete})

	assert.Equal(t, 2, result.Statistics.Total)
	assert.Equal(t, 1, result.Statistics.Complete)
	assert.Equal(t, 1, result.Statistics.Incomplete)
	assert.Equal(t, 50, result.Statistics.CompletionRate)

	require.Len(t, result.Complete, 1)
	assert.Equal(t, "Acme Roofing", result.Complete[0].Name)
	require.Len(t, result.Incomplete, 1)
	assert.Equal(t, "Beta LLC", result.Incomplete[0].Name)

	assert.Equal(t, 2, result.Statistics.ImageStats.WithLogo)
	assert.Equal(t, 1, result.Statistics.ImageStats.WithBanner)
	assert.Equal(t, 1, result.Statistics.ImageStats.WithBothLogoAndBanner)
	assert.Equal(t, 1, result.Statistics.ImageStats.WithAllRequiredImages)
}

func TestFilter_EmptyDirectory(t *testing.T) {
	t.Parallel()

	result := Filter(nil)
	assert.Equal(t, 0, result.Statistics.Total)
	// Guarded division: rate is 0, not NaN.
	assert.Equal(t, 0, result.Statistics.CompletionRate)
	assert.Empty(t, result.Complete)
	assert.Empty(t, result.Incomplete)
}

func TestMissingFieldsHistogram(t *testing.T) {
	t.Parallel()

	// Two businesses missing Phone; one also missing Description.
	b1 := completeBusiness()
	b1.Phone = ""
	b2 := completeBusiness()
	b2.Name = "Second Co"
	b2.Phone = ""
	b2.Description = ""

	hist := MissingFieldsHistogram([]model.Business{b1, b2})
	require.Len(t, hist, 2)

	assert.Equal(t, FieldCount{Field: "Phone Number", Count: 2, Percentage: 100}, hist[0])
	assert.Equal(t, FieldCount{Field: "Description", Count: 1, Percentage: 50}, hist[1])
}

func TestMissingFieldsHistogram_TiesKeepDeclarationOrder(t *testing.T) {
	t.Parallel()

	b := completeBusiness()
	b.Website = ""
	b.Address = ""

	hist := MissingFieldsHistogram([]model.Business{b})
	require.Len(t, hist, 2)
	// Address precedes Website in requirement declaration order.
	assert.Equal(t, "Address", hist[0].Field)
	assert.Equal(t, "Website", hist[1].Field)
}

func TestMissingFieldsHistogram_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, MissingFieldsHistogram(nil))
}

func TestAnalyzeImages(t *testing.T) {
	t.Parallel()

	noImages := model.Business{BusinessRecord: model.BusinessRecord{Name: "Bare"}}

	a := AnalyzeImages([]model.Business{completeBusiness(), noImages})

	assert.Equal(t, 2, a.TotalBusinesses)
	assert.Equal(t, 1, a.BusinessesWithImages)
	assert.Equal(t, 1, a.BusinessesWithLogo)
	assert.Equal(t, 1, a.BusinessesWithBanner)
	assert.Equal(t, 1, a.BusinessesWithBoth)
	assert.Equal(t, 1, a.BusinessesWithAllRequired)
	assert.InDelta(t, 1.5, a.AverageImagesPerBusiness, 0.001)
	assert.Equal(t, 3, a.ImageTypeDistribution.Total)
	assert.Equal(t, 1, a.ImageTypeDistribution.Additional)
}

func TestAnalyzeImages_Empty(t *testing.T) {
	t.Parallel()

	a := AnalyzeImages(nil)
	assert.Equal(t, 0, a.TotalBusinesses)
	assert.Zero(t, a.AverageImagesPerBusiness)
}

func TestBuildReport(t *testing.T) {
	t.Parallel()

	t.Run("automation gated on at least one complete record", func(t *testing.T) {
		t.Parallel()
		report := BuildReport([]model.Business{completeBusiness()})
		assert.True(t, report.CanProceedToAutomation)
		assert.Len(t, report.Complete, 1)
	})

	t.Run("no complete records blocks automation", func(t *testing.T) {
		t.Parallel()
		report := BuildReport([]model.Business{
			{BusinessRecord: model.BusinessRecord{Name: "Beta LLC"}},
		})
		assert.False(t, report.CanProceedToAutomation)
		assert.Empty(t, report.Complete)
		assert.Len(t, report.Incomplete, 1)
	})
}
