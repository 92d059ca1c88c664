package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_EndToEnd(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Business Name", "Acme Co", "Beta LLC"},
		{"Phone", "555-1111", ""},
		{"Email", "a@acme.com", "b@beta.com"},
	}

	records := Extract(grid)
	require.Len(t, records, 2)

	assert.Equal(t, "Acme Co", records[0].Name)
	assert.Equal(t, "555-1111", records[0].Phone)
	assert.Equal(t, "a@acme.com", records[0].Email)

	// Beta LLC has no phone but still passes the gate via email.
	assert.Equal(t, "Beta LLC", records[1].Name)
	assert.Empty(t, records[1].Phone)
	assert.Equal(t, "b@beta.com", records[1].Email)
}

func TestExtract_FullRecord(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Business Name", "Acme Roofing"},
		{"Address", "1 Main St"},
		{"Phone Number", "555-1111"},
		{"Website", "https://acme.test"},
		{"Email", "info@acme.test"},
		{"Year Company Was Founded", "1999"},
		{"Main Services", "Roof repair, Roof replacement"},
		{"Other Main Services", "Gutters, , Siding"},
		{"Company Size", "25 employees"},
		{"Service Areas (Radius)", "50 miles"},
		{"Description", `"Family-owned since 1999"`},
		{"Contractor type", "Roofing"},
		{"Gmail", "acmeroof@gmail.com"},
		{"Gmail App Password", "abcd efgh ijkl mnop"},
	}

	records := Extract(grid)
	require.Len(t, records, 1)
	rec := records[0]

	assert.Equal(t, "Acme Roofing", rec.Name)
	assert.Equal(t, "1 Main St", rec.Address)
	assert.Equal(t, "555-1111", rec.Phone)
	assert.Equal(t, "https://acme.test", rec.Website)
	assert.Equal(t, "info@acme.test", rec.Email)
	require.NotNil(t, rec.YearFounded)
	assert.Equal(t, 1999, *rec.YearFounded)
	assert.Equal(t, []string{"Roof repair", "Roof replacement"}, rec.MainServices)
	assert.Equal(t, []string{"Gutters", "Siding"}, rec.OtherServices)
	require.NotNil(t, rec.CompanySize)
	assert.Equal(t, 25, *rec.CompanySize)
	assert.Equal(t, "50 miles", rec.ServiceArea)
	// One enclosing quote pair is stripped.
	assert.Equal(t, "Family-owned since 1999", rec.Description)
	assert.Equal(t, "Roofing", rec.ContractorType)
	assert.Equal(t, "acmeroof@gmail.com", rec.Gmail)
	assert.Equal(t, "abcd efgh ijkl mnop", rec.GmailAppPassword)
}

func TestExtract_SkipsAndGates(t *testing.T) {
	t.Parallel()

	t.Run("column without a name is skipped", func(t *testing.T) {
		t.Parallel()
		grid := [][]string{
			{"Business Name", "", "Acme"},
			{"Phone", "555-0000", "555-1111"},
		}
		records := Extract(grid)
		require.Len(t, records, 1)
		assert.Equal(t, "Acme", records[0].Name)
	})

	t.Run("duplicate names keep the first column", func(t *testing.T) {
		t.Parallel()
		grid := [][]string{
			{"Business Name", "Acme", "acme"},
			{"Phone", "555-1111", "555-2222"},
		}
		records := Extract(grid)
		require.Len(t, records, 1)
		assert.Equal(t, "555-1111", records[0].Phone)
	})

	t.Run("no phone and no email is rejected", func(t *testing.T) {
		t.Parallel()
		grid := [][]string{
			{"Business Name", "Ghost LLC"},
			{"Address", "1 Nowhere Ln"},
		}
		assert.Empty(t, Extract(grid))
	})

	t.Run("ragged rows degrade to empty fields", func(t *testing.T) {
		t.Parallel()
		grid := [][]string{
			{"Business Name", "Acme", "Beta"},
			{"Phone", "555-1111"},
			{},
			{"Email"},
		}
		records := Extract(grid)
		require.Len(t, records, 1)
		assert.Equal(t, "Acme", records[0].Name)
	})

	t.Run("empty grid", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, Extract(nil))
		assert.Empty(t, Extract([][]string{}))
	})

	t.Run("record count bounded by columns minus one", func(t *testing.T) {
		t.Parallel()
		grid := [][]string{
			{"Business Name", "A", "B", "C"},
			{"Phone", "1", "2", "3"},
		}
		records := Extract(grid)
		assert.LessOrEqual(t, len(records), 3)
		for _, r := range records {
			assert.NotEmpty(t, r.Name)
		}
	})
}

func TestExtract_Pure(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Business Name", ` "Acme" `},
		{"Phone", "555-1111"},
	}
	first := Extract(grid)
	second := Extract(grid)
	assert.Equal(t, first, second)
	assert.Equal(t, ` "Acme" `, grid[0][1])
}

func TestExtract_NumericParseFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	grid := [][]string{
		{"Business Name", "Acme"},
		{"Phone", "555-1111"},
		{"Year Company Was Founded", "long ago"},
		{"Company Size", "tiny"},
	}
	records := Extract(grid)
	require.Len(t, records, 1)

	assert.Nil(t, records[0].YearFounded)
	assert.Equal(t, "long ago", records[0].YearFoundedRaw)
	assert.Nil(t, records[0].CompanySize)
	assert.Equal(t, "tiny", records[0].CompanySizeRaw)
}

func TestSplitServices(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitServices(""))
	assert.Nil(t, splitServices("   "))
	assert.Equal(t, []string{"a"}, splitServices("a"))
	assert.Equal(t, []string{"a", "b"}, splitServices(" a , b ,"))
}

func TestParseLeadingInt(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want *int
	}{
		{"1999", intPtr(1999)},
		{"25 employees", intPtr(25)},
		{"-3", intPtr(-3)},
		{"+7", intPtr(7)},
		{"", nil},
		{"none", nil},
		{"est. 1999", nil},
	}
	for _, tc := range cases {
		got := parseLeadingInt(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, tc.in)
		} else {
			require.NotNil(t, got, tc.in)
			assert.Equal(t, *tc.want, *got, tc.in)
		}
	}
}

func intPtr(n int) *int { return &n }
