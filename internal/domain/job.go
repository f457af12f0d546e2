package domain

// Job mirrors the job posting schema served by the upstream jobs API.
// Optional fields are not yet populated by every backend.
type Job struct {
	ID               string   `json:"id,omitempty"`
	Title            string   `json:"title"`
	Language         string   `json:"language,omitempty"`
	Description      string   `json:"description,omitempty"`
	URL              string   `json:"url,omitempty"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	Type             string   `json:"type,omitempty"`
	PostedAt         string   `json:"postedAt,omitempty"`
	ApplyURL         string   `json:"applyUrl,omitempty"`
	CompanyLogoURL   string   `json:"companyLogoUrl,omitempty"`
	Salary           string   `json:"salary,omitempty"`
	IsNew            bool     `json:"isNew,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Benefits         []string `json:"benefits,omitempty"`
}

// JobRef is the minimal job payload a share has to carry.
type JobRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
