package sheet

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/directory-cli/internal/model"
)

// Extract turns a transposed grid into one BusinessRecord per usable column.
// Column 0 holds field labels; each further column is one business. Columns
// without a resolvable business name, duplicates of an already-extracted
// name, and records with neither phone nor email are silently skipped.
// Extract is a pure transform: the grid is never modified and malformed
// rows degrade to empty fields.
func Extract(grid [][]string) []model.BusinessRecord {
	if len(grid) == 0 {
		return nil
	}

	maxColumns := 0
	for _, row := range grid {
		if len(row) > maxColumns {
			maxColumns = len(row)
		}
	}

	var records []model.BusinessRecord
	seen := make(map[string]bool)

	for col := 1; col < maxColumns; col++ {
		rec := extractColumn(grid, col)
		if rec == nil {
			continue
		}
		key := strings.ToLower(rec.Name)
		if seen[key] {
			zap.L().Debug("sheet: skipping duplicate business column",
				zap.Int("column", col),
				zap.String("name", rec.Name),
			)
			continue
		}
		seen[key] = true
		records = append(records, *rec)
	}

	return records
}

// extractColumn builds one record from a single grid column, or nil when
// the column has no name or fails the phone-or-email gate.
func extractColumn(grid [][]string, col int) *model.BusinessRecord {
	var cells []model.LabeledCell
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		label := strings.TrimSpace(row[0])
		value := ""
		if col < len(row) {
			value = stripQuotes(strings.TrimSpace(row[col]))
		}
		if label == "" || value == "" {
			continue
		}
		cells = append(cells, model.LabeledCell{Label: label, Value: value})
	}

	values := model.ResolveValues(cells)

	name := values[model.FieldName]
	if name == "" {
		return nil
	}

	rec := &model.BusinessRecord{
		Name:             name,
		Address:          values[model.FieldAddress],
		Phone:            values[model.FieldPhone],
		Website:          values[model.FieldWebsite],
		Email:            values[model.FieldEmail],
		YearFoundedRaw:   values[model.FieldYearFounded],
		MainServices:     splitServices(values[model.FieldMainServices]),
		OtherServices:    splitServices(values[model.FieldOtherServices]),
		CompanySizeRaw:   values[model.FieldCompanySize],
		ServiceArea:      values[model.FieldServiceArea],
		Description:      values[model.FieldDescription],
		ContractorType:   values[model.FieldContractorType],
		Gmail:            values[model.FieldGmail],
		GmailAppPassword: values[model.FieldGmailAppPassword],
	}
	rec.YearFounded = parseLeadingInt(rec.YearFoundedRaw)
	rec.CompanySize = parseLeadingInt(rec.CompanySizeRaw)

	// Extraction-layer gate: a record needs a name and at least one way to
	// reach the business. Full completeness is judged later by the validator.
	if rec.Phone == "" && rec.Email == "" {
		zap.L().Debug("sheet: dropping record without phone or email",
			zap.Int("column", col),
			zap.String("name", rec.Name),
		)
		return nil
	}

	return rec
}

// stripQuotes removes one enclosing pair of double quotes, matching the
// spreadsheet export's habit of quoting whole cells.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// splitServices comma-splits a services cell into trimmed entries. Empty
// input yields nil rather than a single empty entry, so an empty cell can
// never satisfy the non-empty-list completeness check.
func splitServices(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseLeadingInt parses an optional sign and leading digits, ignoring any
// trailing text ("25 employees" parses as 25). Returns nil when the text
// does not start with a number.
func parseLeadingInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	i := 0
	sign := 1
	if s[0] == '+' || s[0] == '-' {
		if s[0] == '-' {
			sign = -1
		}
		i++
	}

	n := 0
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		digits++
	}
	if digits == 0 {
		return nil
	}

	n *= sign
	return &n
}
