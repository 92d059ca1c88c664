package model

import "time"

// ImageType classifies a drive image by filename heuristic.
type ImageType string

const (
	ImageTypeLogo   ImageType = "logo"
	ImageTypeBanner ImageType = "banner"
	ImageTypeOther  ImageType = "image"
)

// ClassifiedImage is a drive file assigned a role and public URLs.
type ClassifiedImage struct {
	Name         string    `json:"name"`
	Type         ImageType `json:"type"`
	DriveID      string    `json:"drive_id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
}

// ImageFolder records the drive folder a business's images were read from.
type ImageFolder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Found bool   `json:"found"`
}

// BusinessRecord is one business parsed from a spreadsheet column.
//
// YearFounded and CompanySize are parsed from free text; a failed parse
// leaves the pointer nil while the raw cell text is kept so a non-numeric
// entry still counts as present.
type BusinessRecord struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Phone            string   `json:"phone"`
	Website          string   `json:"website,omitempty"`
	Email            string   `json:"email,omitempty"`
	YearFounded      *int     `json:"year_founded,omitempty"`
	YearFoundedRaw   string   `json:"year_founded_raw,omitempty"`
	MainServices     []string `json:"main_services"`
	OtherServices    []string `json:"other_services"`
	CompanySize      *int     `json:"company_size,omitempty"`
	CompanySizeRaw   string   `json:"company_size_raw,omitempty"`
	ServiceArea      string   `json:"service_area,omitempty"`
	Description      string   `json:"description,omitempty"`
	ContractorType   string   `json:"contractor_type,omitempty"`
	Gmail            string   `json:"gmail,omitempty"`
	GmailAppPassword string   `json:"gmail_app_password,omitempty"`
}

// Business is a record with its classified drive images attached.
type Business struct {
	BusinessRecord
	Images      []ClassifiedImage `json:"images"`
	ImageFolder ImageFolder       `json:"image_folder"`
}

// Requirement is one completeness check with its human-readable label.
type Requirement struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Met   bool   `json:"met"`
}

// Requirements holds the 17 completeness flags for a business.
type Requirements struct {
	Name                bool `json:"name"`
	Address             bool `json:"address"`
	Phone               bool `json:"phone"`
	Website             bool `json:"website"`
	YearFounded         bool `json:"yearFounded"`
	Email               bool `json:"email"`
	MainServices        bool `json:"mainServices"`
	OtherServices       bool `json:"otherServices"`
	CompanySize         bool `json:"companySize"`
	ServiceArea         bool `json:"serviceArea"`
	Description         bool `json:"description"`
	ContractorType      bool `json:"contractorType"`
	Gmail               bool `json:"gmail"`
	GmailAppPassword    bool `json:"gmailAppPassword"`
	HasLogo             bool `json:"hasLogo"`
	HasBanner           bool `json:"hasBanner"`
	HasAdditionalImages bool `json:"hasAdditionalImages"`
}

// List returns every requirement in fixed declaration order. The missing
// list and the histogram both depend on this order staying stable.
func (r Requirements) List() []Requirement {
	return []Requirement{
		{Key: "name", Label: "Business Name", Met: r.Name},
		{Key: "address", Label: "Address", Met: r.Address},
		{Key: "phone", Label: "Phone Number", Met: r.Phone},
		{Key: "website", Label: "Website", Met: r.Website},
		{Key: "yearFounded", Label: "Year Founded", Met: r.YearFounded},
		{Key: "email", Label: "Email", Met: r.Email},
		{Key: "mainServices", Label: "Main Services", Met: r.MainServices},
		{Key: "otherServices", Label: "Other Services", Met: r.OtherServices},
		{Key: "companySize", Label: "Company Size", Met: r.CompanySize},
		{Key: "serviceArea", Label: "Service Area", Met: r.ServiceArea},
		{Key: "description", Label: "Description", Met: r.Description},
		{Key: "contractorType", Label: "Contractor Type", Met: r.ContractorType},
		{Key: "gmail", Label: "Gmail Account", Met: r.Gmail},
		{Key: "gmailAppPassword", Label: "Gmail App Password", Met: r.GmailAppPassword},
		{Key: "hasLogo", Label: "Logo Image", Met: r.HasLogo},
		{Key: "hasBanner", Label: "Banner Image", Met: r.HasBanner},
		{Key: "hasAdditionalImages", Label: "At Least 1 Additional Image", Met: r.HasAdditionalImages},
	}
}

// RequirementCount is the number of completeness checks per business.
const RequirementCount = 17

// ImageDetails summarizes the classified images behind a validation result.
type ImageDetails struct {
	Total            int               `json:"total"`
	HasLogo          bool              `json:"has_logo"`
	HasBanner        bool              `json:"has_banner"`
	AdditionalCount  int               `json:"additional_count"`
	LogoImage        *ClassifiedImage  `json:"logo_image,omitempty"`
	BannerImage      *ClassifiedImage  `json:"banner_image,omitempty"`
	AdditionalImages []ClassifiedImage `json:"additional_images"`
}

// ValidationResult is the completeness verdict for one business.
type ValidationResult struct {
	IsComplete           bool         `json:"is_complete"`
	Missing              []string     `json:"missing"`
	Requirements         Requirements `json:"requirements"`
	CompletionPercentage int          `json:"completion_percentage"`
	ImageDetails         ImageDetails `json:"image_details"`
}

// User is a registered dashboard user.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Company      string    `json:"company,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalysisRun is the persisted summary of one directory analysis.
type AnalysisRun struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	Total          int       `json:"total"`
	Complete       int       `json:"complete"`
	Incomplete     int       `json:"incomplete"`
	CompletionRate int       `json:"completion_rate"`
	Summary        []byte    `json:"summary,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
