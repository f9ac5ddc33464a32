package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"careerlens/internal/database"
	"careerlens/internal/log"
	"careerlens/internal/match"
	"careerlens/internal/resume"
	"careerlens/internal/resumegen"
	"careerlens/internal/worker"
)

type createMatchRequestBody struct {
	JobSeekerID string   `json:"job_seeker_id"`
	Query       string   `json:"query"`
	Location    string   `json:"location"`
	Domains     []string `json:"domains"`
}

func (s *Server) handleCreateMatchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponent("api")

	var body createMatchRequestBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.JobSeekerID) == "" {
		respondError(w, http.StatusBadRequest, "job_seeker_id is required")
		return
	}

	if _, err := s.db.GetLatestResume(r.Context(), body.JobSeekerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusUnprocessableEntity, "no resume uploaded for this seeker")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to look up resume")
		return
	}

	req := worker.Request{
		ID:          uuid.New(),
		JobSeekerID: body.JobSeekerID,
		Query:       body.Query,
		Location:    body.Location,
		Domains:     body.Domains,
	}

	err := s.db.CreateMatchRequest(r.Context(), database.CreateMatchRequestParams{
		ID:          req.ID,
		JobSeekerID: req.JobSeekerID,
		Status:      "queued",
		Query:       req.Query,
		Location:    req.Location,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to create match request")
		respondError(w, http.StatusInternalServerError, "failed to create match request")
		return
	}

	if err := worker.PublishRequest(s.rabbitConn, req); err != nil {
		logger.Error().Err(err).Str("request_id", req.ID.String()).Msg("failed to enqueue match request")
		_ = s.db.UpdateMatchRequestStatus(r.Context(), database.UpdateMatchRequestStatusParams{
			Status: "failed",
			ID:     req.ID,
		})
		respondError(w, http.StatusInternalServerError, "failed to enqueue match request")
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"id":     req.ID.String(),
		"status": "queued",
	})
}

func (s *Server) handleGetMatchRequest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := s.db.GetMatchRequest(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "match request not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load match request")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"id":            req.ID,
		"job_seeker_id": req.JobSeekerID,
		"status":        req.Status,
		"query":         req.Query,
		"location":      req.Location,
		"created_at":    req.CreatedAt,
		"updated_at":    req.UpdatedAt,
	})
}

type matchResponse struct {
	JobID           string   `json:"job_id"`
	JobTitle        string   `json:"job_title"`
	CompanyName     string   `json:"company_name"`
	Location        string   `json:"location"`
	Industry        string   `json:"industry"`
	EmploymentType  string   `json:"employment_type"`
	PostedDate      string   `json:"posted_date"`
	ApplicationURL  string   `json:"application_url"`
	MatchPercentage int32    `json:"match_percentage"`
	SimilarityScore float64  `json:"similarity_score"`
	SkillMatchScore float64  `json:"skill_match_score"`
	MatchedSkills   []string `json:"matched_skills"`
	SalaryMin       *float64 `json:"salary_min,omitempty"`
	SalaryMax       *float64 `json:"salary_max,omitempty"`
}

func (s *Server) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	seekerID := chi.URLParam(r, "id")

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	matches, err := s.db.GetTopMatches(r.Context(), database.GetTopMatchesParams{
		JobSeekerID: seekerID,
		Limit:       int32(limit),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load matches")
		return
	}

	out := make([]matchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, toMatchResponse(m))
	}

	respondJSON(w, http.StatusOK, map[string]any{"matches": out})
}

func toMatchResponse(m database.MatchedJob) matchResponse {
	resp := matchResponse{
		JobID:           m.JobID,
		JobTitle:        m.JobTitle,
		CompanyName:     m.CompanyName,
		Location:        m.Location,
		Industry:        m.Industry,
		EmploymentType:  m.EmploymentType,
		PostedDate:      m.PostedDate,
		ApplicationURL:  m.ApplicationUrl,
		MatchPercentage: m.MatchPercentage,
		SimilarityScore: m.CosineSimilarityScore,
		SkillMatchScore: m.SkillMatchScore,
		MatchedSkills:   splitCSV(m.MatchedSkills),
	}
	if m.SalaryMin.Valid {
		resp.SalaryMin = &m.SalaryMin.Float64
	}
	if m.SalaryMax.Valid {
		resp.SalaryMax = &m.SalaryMax.Float64
	}
	return resp
}

// jobHashPattern matches the md5-derived posting ids used as vector and
// match row keys.
var jobHashPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func (s *Server) handleGetMatchDetail(w http.ResponseWriter, r *http.Request) {
	seekerID := chi.URLParam(r, "id")
	jobID := chi.URLParam(r, "jobID")
	if !jobHashPattern.MatchString(jobID) {
		respondError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	m, err := s.db.GetMatchedJob(r.Context(), database.GetMatchedJobParams{
		JobSeekerID: seekerID,
		JobID:       jobID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "match not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load match")
		return
	}
	respondJSON(w, http.StatusOK, toMatchResponse(m))
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	seekerID := chi.URLParam(r, "id")

	stats, err := s.db.GetMatchStatistics(r.Context(), seekerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}

	matches, err := s.db.GetTopMatches(r.Context(), database.GetTopMatchesParams{
		JobSeekerID: seekerID,
		Limit:       100,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load statistics")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"total_matches": stats.Total,
		"avg_match":     stats.AvgMatch,
		"best_match":    stats.BestMatch,
		"salary_bands":  salaryBands(matches),
	})
}

// salaryBands groups matches by their advertised monthly HKD band.
func salaryBands(matches []database.MatchedJob) map[string]int {
	bands := make(map[string]int)
	for _, m := range matches {
		if !m.SalaryMin.Valid || !m.SalaryMax.Valid {
			bands["Not specified"]++
			continue
		}
		bands[match.SalaryBand(int(m.SalaryMin.Float64), int(m.SalaryMax.Float64))]++
	}
	return bands
}

type tailoredResumeBody struct {
	JobTitle       string   `json:"job_title"`
	Company        string   `json:"company"`
	JobDescription string   `json:"job_description"`
	Skills         []string `json:"skills"`
}

func (s *Server) handleTailoredResume(w http.ResponseWriter, r *http.Request) {
	seekerID := chi.URLParam(r, "id")

	var body tailoredResumeBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.JobTitle == "" || body.JobDescription == "" {
		respondError(w, http.StatusBadRequest, "job_title and job_description are required")
		return
	}

	seeker, err := s.db.GetJobSeeker(r.Context(), seekerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "seeker profile not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load seeker profile")
		return
	}

	generated, err := s.generator.Generate(r.Context(), seekerProfile(seeker), resumegen.JobPosting{
		Title:       body.JobTitle,
		Company:     body.Company,
		Description: body.JobDescription,
		Skills:      body.Skills,
	}, "")
	if err != nil {
		logger := log.WithComponent("api")
		logger.Error().Err(err).Msg("resume generation failed")
		respondError(w, http.StatusBadGateway, "resume generation failed")
		return
	}

	response := map[string]any{
		"resume": generated,
		"text":   resumegen.FormatText(generated),
	}

	if r.URL.Query().Get("format") == "docx" {
		key, err := s.renderAndStoreDocx(r.Context(), seekerID, generated)
		if err != nil {
			logger := log.WithComponent("api")
			logger.Error().Err(err).Msg("docx rendering failed")
			respondError(w, http.StatusInternalServerError, "docx rendering failed")
			return
		}
		response["docx_object_key"] = key
	}

	respondJSON(w, http.StatusOK, response)
}

// renderAndStoreDocx fills the resume template, uploads the result to
// object storage and returns the object key.
func (s *Server) renderAndStoreDocx(ctx context.Context, seekerID string, generated *resumegen.Resume) (string, error) {
	if s.templatePath == "" || s.storage == nil {
		return "", errors.New("docx output not configured")
	}

	outPath := filepath.Join(os.TempDir(), fmt.Sprintf("resume-%s.docx", uuid.New()))
	defer os.Remove(outPath)

	if err := resumegen.RenderDocx(generated, s.templatePath, outPath); err != nil {
		return "", err
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("tailored/%s/%s.docx", seekerID, uuid.New())
	if err := s.storage.Upload(ctx, key, resume.MimeDocx, data); err != nil {
		return "", err
	}
	return key, nil
}

func (s *Server) handleDeleteMatches(w http.ResponseWriter, r *http.Request) {
	seekerID := chi.URLParam(r, "id")

	deleted, err := s.db.DeleteMatchesForSeeker(r.Context(), seekerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete matches")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"deleted": deleted})
}

// seekerProfile maps a stored profile row back to the extraction shape
// the generator prompts expect.
func seekerProfile(row database.JobSeeker) *resume.Profile {
	return &resume.Profile{
		Name:                 row.Name,
		Email:                row.Email,
		Phone:                row.Phone,
		Linkedin:             row.Linkedin,
		Summary:              row.Summary,
		EducationLevel:       row.EducationLevel,
		Major:                row.Major,
		UniversityBackground: row.UniversityBackground,
		Languages:            row.Languages,
		Certificates:         row.Certificates,
		HardSkills:           row.HardSkills,
		SoftSkills:           row.SoftSkills,
		WorkExperience:       row.WorkExperience,
		ProjectExperience:    row.ProjectExperience,
		DetailedExperience:   row.DetailedExperience,
		LocationPreference:   row.LocationPreference,
		IndustryPreference:   row.IndustryPreference,
		SalaryExpectation:    row.SalaryExpectation,
	}
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListHeadHunterJobs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := s.db.GetHeadHunterJob(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "job not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

const maxResumeSize = 10 << 20

// handleUploadResume accepts a multipart resume upload, stores the file
// in object storage and records it so match requests can find it.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	seekerID := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	mimeType, err := resumeMime(header.Filename)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	if s.storage == nil {
		respondError(w, http.StatusInternalServerError, "object storage not configured")
		return
	}

	key := fmt.Sprintf("resumes/%s/%s%s", seekerID, uuid.New(), strings.ToLower(filepath.Ext(header.Filename)))
	if err := s.storage.Upload(r.Context(), key, mimeType, data); err != nil {
		logger := log.WithComponent("api")
		logger.Error().Err(err).Msg("resume upload failed")
		respondError(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	err = s.db.CreateResume(r.Context(), database.CreateResumeParams{
		JobSeekerID:      seekerID,
		OriginalFilename: header.Filename,
		Mime:             mimeType,
		SizeBytes:        int64(len(data)),
		StorageProvider:  "r2",
		ObjectKey:        key,
		UploadStatus:     "uploaded",
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to record resume")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"object_key": key,
		"filename":   header.Filename,
		"size_bytes": len(data),
	})
}

// resumeMime maps an uploaded filename to a supported resume MIME type.
func resumeMime(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return resume.MimePDF, nil
	case ".docx":
		return resume.MimeDocx, nil
	case ".txt":
		return resume.MimeText, nil
	}
	return "", fmt.Errorf("unsupported resume type %q", filepath.Ext(filename))
}

// handleSimpleMatch runs the heuristic scorer against a curated posting,
// with no model call involved.
func (s *Server) handleSimpleMatch(w http.ResponseWriter, r *http.Request) {
	seekerID := chi.URLParam(r, "id")
	jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := s.db.GetHeadHunterJob(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "job not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load job")
		return
	}

	seeker, err := s.db.GetJobSeeker(r.Context(), seekerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "seeker profile not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load seeker profile")
		return
	}

	result := match.AnalyzeSimpleMatch(match.SimpleMatchInput{
		JobSkills:        job.RequiredSkills,
		JobLanguages:     job.Languages,
		JobLocation:      job.WorkLocation,
		JobExperience:    match.YearsOfExperience(job.ExperienceLevel),
		JobNeedsDegree:   strings.Contains(strings.ToLower(job.JobDescription), "degree"),
		SeekerSkills:     seeker.HardSkills,
		SeekerLanguages:  seeker.Languages,
		SeekerLocation:   seeker.LocationPreference,
		SeekerExperience: match.YearsOfExperience(seeker.WorkExperience),
		SeekerHasDegree:  seeker.EducationLevel != "",
	})
	respondJSON(w, http.StatusOK, result)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
