package users

type Profile struct {
	ID                int64   `json:"id"`
	Email             string  `json:"email"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	WorkTitle         string  `json:"workTitle,omitempty"`
	Description       string  `json:"description,omitempty"`
	YearsOfExperience int     `json:"yearsOfExperience,omitempty"`
	Skills            string  `json:"skills,omitempty"`
	Location          string  `json:"location,omitempty"`
	ExpectedSalary    float64 `json:"expectedSalary,omitempty"`
	JobStatus         string  `json:"jobStatus,omitempty"`
	LinkedInProfile   string  `json:"linkedInProfile,omitempty"`
	GithubProfile     string  `json:"githubProfile,omitempty"`
	Portfolio         string  `json:"portfolio,omitempty"`
	ProfilePictureURL string  `json:"profilePictureUrl,omitempty"`
	JobType           string  `json:"jobType,omitempty"`
}

// UpdateData carries the mutable profile fields; nil means "leave as is".
type UpdateData struct {
	FirstName         *string  `json:"firstName,omitempty"`
	LastName          *string  `json:"lastName,omitempty"`
	Email             *string  `json:"email,omitempty"`
	WorkTitle         *string  `json:"workTitle,omitempty"`
	Description       *string  `json:"description,omitempty"`
	YearsOfExperience *int     `json:"yearsOfExperience,omitempty"`
	Skills            *string  `json:"skills,omitempty"`
	Location          *string  `json:"location,omitempty"`
	ExpectedSalary    *float64 `json:"expectedSalary,omitempty"`
	JobStatus         *string  `json:"jobStatus,omitempty"`
	LinkedInProfile   *string  `json:"linkedInProfile,omitempty"`
	GithubProfile     *string  `json:"githubProfile,omitempty"`
	Portfolio         *string  `json:"portfolio,omitempty"`
	JobType           *string  `json:"jobType,omitempty"`
}

type UploadPictureResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}
