package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveValues(t *testing.T) {
	t.Parallel()

	t.Run("priority order beats row order", func(t *testing.T) {
		t.Parallel()
		cells := []LabeledCell{
			{Label: "Name", Value: "plain"},
			{Label: "Company Name", Value: "company"},
			{Label: "Business Name", Value: "business"},
		}
		got := ResolveValues(cells)
		assert.Equal(t, "business", got[FieldName])
	})

	t.Run("row order breaks ties within one alias", func(t *testing.T) {
		t.Parallel()
		cells := []LabeledCell{
			{Label: "Phone (office)", Value: "555-0001"},
			{Label: "Phone (mobile)", Value: "555-0002"},
		}
		got := ResolveValues(cells)
		assert.Equal(t, "555-0001", got[FieldPhone])
	})

	t.Run("matching is case-insensitive substring", func(t *testing.T) {
		t.Parallel()
		cells := []LabeledCell{
			{Label: "Year Company Was Founded", Value: "1999"},
			{Label: "Service Areas (Radius)", Value: "50 miles"},
		}
		got := ResolveValues(cells)
		assert.Equal(t, "1999", got[FieldYearFounded])
		assert.Equal(t, "50 miles", got[FieldServiceArea])
	})

	t.Run("app password does not shadow gmail", func(t *testing.T) {
		t.Parallel()
		cells := []LabeledCell{
			{Label: "Gmail App Password", Value: "abcd efgh"},
			{Label: "Gmail", Value: "acme@gmail.com"},
		}
		got := ResolveValues(cells)
		assert.Equal(t, "abcd efgh", got[FieldGmailAppPassword])
		assert.Equal(t, "acme@gmail.com", got[FieldGmail])
	})

	t.Run("other main services label stays off main services", func(t *testing.T) {
		t.Parallel()
		cells := []LabeledCell{
			{Label: "Main Services", Value: "roofing"},
			{Label: "Other Main Services", Value: "gutters"},
		}
		got := ResolveValues(cells)
		assert.Equal(t, "roofing", got[FieldMainServices])
		assert.Equal(t, "gutters", got[FieldOtherServices])
	})

	t.Run("unmatched fields are absent", func(t *testing.T) {
		t.Parallel()
		got := ResolveValues([]LabeledCell{{Label: "Fax", Value: "555-9999"}})
		_, ok := got[FieldPhone]
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		t.Parallel()
		cells := []LabeledCell{
			{Label: "Business Type", Value: "GC"},
			{Label: "Contractor Type", Value: "roofer"},
			{Label: "Website URL", Value: "https://acme.test"},
		}
		first := ResolveValues(cells)
		for range 20 {
			assert.Equal(t, first, ResolveValues(cells))
		}
		assert.Equal(t, "roofer", first[FieldContractorType])
	})
}

func TestRequirementsList(t *testing.T) {
	t.Parallel()

	list := Requirements{}.List()
	assert.Len(t, list, RequirementCount)

	labels := make([]string, len(list))
	for i, r := range list {
		labels[i] = r.Label
	}
	assert.Equal(t, []string{
		"Business Name", "Address", "Phone Number", "Website", "Year Founded",
		"Email", "Main Services", "Other Services", "Company Size",
		"Service Area", "Description", "Contractor Type", "Gmail Account",
		"Gmail App Password", "Logo Image", "Banner Image",
		"At Least 1 Additional Image",
	}, labels)
}
