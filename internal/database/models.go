package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type JobSeeker struct {
	ID                   uuid.UUID
	JobSeekerID          string
	Name                 string
	Email                string
	Phone                string
	Linkedin             string
	Summary              string
	EducationLevel       string
	Major                string
	UniversityBackground string
	Languages            string
	Certificates         string
	HardSkills           string
	SoftSkills           string
	WorkExperience       string
	ProjectExperience    string
	DetailedExperience   string
	LocationPreference   string
	IndustryPreference   string
	SalaryExpectation    string
	PrimaryRole          string
	SimpleSearchTerms    string
	CreatedAt            time.Time
	LastUpdated          time.Time
}

type MatchedJob struct {
	ID                    uuid.UUID
	JobSeekerID           string
	JobID                 string
	JobTitle              string
	CompanyName           string
	Location              string
	JobDescription        string
	RequiredSkills        string
	ExperienceRequired    string
	SalaryMin             sql.NullFloat64
	SalaryMax             sql.NullFloat64
	EmploymentType        string
	Industry              string
	PostedDate            string
	ApplicationUrl        string
	CosineSimilarityScore float64
	MatchPercentage       int32
	SkillMatchScore       float64
	MatchedSkills         string
	MissingSkills         string
	MatchedAt             time.Time
	LastUpdated           time.Time
}

type HeadHunterJob struct {
	ID                   uuid.UUID
	JobTitle             string
	JobDescription       string
	MainResponsibilities string
	RequiredSkills       string
	ClientCompany        string
	Industry             string
	WorkLocation         string
	EmploymentType       string
	ExperienceLevel      string
	MinSalary            sql.NullFloat64
	MaxSalary            sql.NullFloat64
	Currency             string
	Languages            string
	CreatedAt            time.Time
}

type Resume struct {
	ID               uuid.UUID
	JobSeekerID      string
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	StorageProvider  string
	ObjectKey        string
	UploadStatus     string
	CreatedAt        time.Time
}

type MatchRequest struct {
	ID          uuid.UUID
	JobSeekerID string
	Status      string
	Query       string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
