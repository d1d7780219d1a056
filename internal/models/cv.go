package models

// NotAvailable is the placeholder used for a CV name or title the model did not
// return.
const NotAvailable = "N/A"

type CVProfile struct {
	Name                     string          `json:"name"`
	Title                    string          `json:"title"`
	Contact                  Contact         `json:"contact"`
	Education                []Education     `json:"education"`
	Experience               []Experience    `json:"experience"`
	Projects                 []Project       `json:"projects"`
	Certifications           []Certification `json:"certifications"`
	Skills                   []string        `json:"skills"`
	SkillsFromWorkExperience []string        `json:"skills_from_work_experience"`
}

type Contact struct {
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Location   *string  `json:"location"`
	LinkedIn   *string  `json:"linkedin"`
	GitHub     *string  `json:"github"`
	OtherLinks []string `json:"other_links"`
}

type Education struct {
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	Institution  *string `json:"institution"`
	Location     *string `json:"location"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Result       *string `json:"result"`
}

type Experience struct {
	Position         *string `json:"position"`
	Company          *string `json:"company"`
	Location         *string `json:"location"`
	StartDate        *string `json:"start_date"`
	EndDate          *string `json:"end_date"`
	Responsibilities *string `json:"responsibilities"`
}

type Project struct {
	Title            *string  `json:"title"`
	Description      *string  `json:"description"`
	StartDate        *string  `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	TechnologiesUsed []string `json:"technologies_used"`
}

type Certification struct {
	Name                *string `json:"name"`
	IssuingOrganization *string `json:"issuing_organization"`
	IssueDate           *string `json:"issue_date"`
	ExpirationDate      *string `json:"expiration_date"`
	CredentialID        *string `json:"credential_id"`
}
