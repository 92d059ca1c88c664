package model

import "strings"

// CanonicalField is the stable internal name a spreadsheet label resolves to.
type CanonicalField string

const (
	FieldName             CanonicalField = "name"
	FieldAddress          CanonicalField = "address"
	FieldPhone            CanonicalField = "phone"
	FieldWebsite          CanonicalField = "website"
	FieldEmail            CanonicalField = "email"
	FieldYearFounded      CanonicalField = "yearFounded"
	FieldOtherServices    CanonicalField = "otherServices"
	FieldMainServices     CanonicalField = "mainServices"
	FieldCompanySize      CanonicalField = "companySize"
	FieldServiceArea      CanonicalField = "serviceArea"
	FieldDescription      CanonicalField = "description"
	FieldContractorType   CanonicalField = "contractorType"
	FieldGmailAppPassword CanonicalField = "gmailAppPassword"
	FieldGmail            CanonicalField = "gmail"
)

// FieldAlias maps a canonical field to its priority-ordered label substrings.
type FieldAlias struct {
	Field  CanonicalField
	Labels []string
}

// FieldAliases is the fixed alias table, evaluated top to bottom. Within a
// field, the first alias that matches any label wins, with grid row order
// breaking ties between labels matching the same alias. A label claimed by
// an earlier field is not offered to later ones; that is why otherServices
// precedes mainServices ("main services" is a substring of "other main
// services") and gmailAppPassword precedes gmail.
var FieldAliases = []FieldAlias{
	{Field: FieldName, Labels: []string{"business name", "company name", "name"}},
	{Field: FieldAddress, Labels: []string{"address"}},
	{Field: FieldPhone, Labels: []string{"phone"}},
	{Field: FieldWebsite, Labels: []string{"website", "web site", "url"}},
	{Field: FieldEmail, Labels: []string{"email", "e-mail"}},
	{Field: FieldYearFounded, Labels: []string{"founded", "year", "established"}},
	{Field: FieldOtherServices, Labels: []string{"other services", "additional services", "other main services"}},
	{Field: FieldMainServices, Labels: []string{"main services", "primary services", "services"}},
	{Field: FieldCompanySize, Labels: []string{"company size", "size", "employees"}},
	{Field: FieldServiceArea, Labels: []string{"service area", "radius", "coverage"}},
	{Field: FieldDescription, Labels: []string{"description", "about"}},
	{Field: FieldContractorType, Labels: []string{"contractor type", "business type", "type"}},
	{Field: FieldGmailAppPassword, Labels: []string{"gmail app password", "app password"}},
	{Field: FieldGmail, Labels: []string{"gmail"}},
}

// LabeledCell is one label/value pair from a spreadsheet column, in grid
// row order.
type LabeledCell struct {
	Label string
	Value string
}

// ResolveValues maps the labeled cells of one spreadsheet column to
// canonical fields. Matching is case-insensitive substring containment
// against the label text; alias list order breaks ties between aliases, and
// row order breaks ties between labels matching the same alias. Fields with
// no matching label are absent from the result, never an error.
func ResolveValues(cells []LabeledCell) map[CanonicalField]string {
	lowered := make([]string, len(cells))
	for i, c := range cells {
		lowered[i] = strings.ToLower(strings.TrimSpace(c.Label))
	}

	claimed := make([]bool, len(cells))
	out := make(map[CanonicalField]string, len(FieldAliases))

	for _, fa := range FieldAliases {
	aliases:
		for _, alias := range fa.Labels {
			for i := range cells {
				if claimed[i] || !strings.Contains(lowered[i], alias) {
					continue
				}
				claimed[i] = true
				out[fa.Field] = cells[i].Value
				break aliases
			}
		}
	}

	return out
}
