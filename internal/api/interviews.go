package api

import (
	"net/http"
	"strings"

	"careerlens/internal/interview"
	"careerlens/internal/log"
)

type interviewJobBody struct {
	JobID            string `json:"job_id"`
	JobTitle         string `json:"job_title"`
	Company          string `json:"company"`
	Industry         string `json:"industry"`
	Experience       string `json:"experience"`
	JobDescription   string `json:"job_description"`
	Responsibilities string `json:"responsibilities"`
	Skills           string `json:"skills"`
}

func (b interviewJobBody) toJob() interview.Job {
	return interview.Job{
		ID:               b.JobID,
		Title:            b.JobTitle,
		Company:          b.Company,
		Industry:         b.Industry,
		Experience:       b.Experience,
		Description:      b.JobDescription,
		Responsibilities: b.Responsibilities,
		Skills:           b.Skills,
	}
}

type questionBody struct {
	Job      interviewJobBody         `json:"job"`
	Profile  *interview.SeekerProfile `json:"profile,omitempty"`
	Previous *interview.QA            `json:"previous,omitempty"`
}

func (s *Server) handleInterviewQuestion(w http.ResponseWriter, r *http.Request) {
	var body questionBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(body.Job.JobTitle) == "" {
		respondError(w, http.StatusBadRequest, "job.job_title is required")
		return
	}

	question, err := s.interviewer.NextQuestion(r.Context(), body.Job.toJob(), body.Profile, body.Previous)
	if err != nil {
		logger := log.WithComponent("api")
		logger.Error().Err(err).Msg("question generation failed")
		respondError(w, http.StatusBadGateway, "question generation failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"question": question})
}

type evaluateBody struct {
	Job      interviewJobBody `json:"job"`
	Question string           `json:"question"`
	Answer   string           `json:"answer"`
}

func (s *Server) handleInterviewEvaluate(w http.ResponseWriter, r *http.Request) {
	var body evaluateBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Question == "" || body.Answer == "" {
		respondError(w, http.StatusBadRequest, "question and answer are required")
		return
	}

	eval, err := s.interviewer.Evaluate(r.Context(), body.Job.toJob(), body.Question, body.Answer)
	if err != nil {
		logger := log.WithComponent("api")
		logger.Error().Err(err).Msg("answer evaluation failed")
		respondError(w, http.StatusBadGateway, "answer evaluation failed")
		return
	}

	respondJSON(w, http.StatusOK, eval)
}

type summaryBody struct {
	Job       interviewJobBody       `json:"job"`
	Questions []string               `json:"questions"`
	Answers   []string               `json:"answers"`
	Scores    []interview.Evaluation `json:"scores,omitempty"`
}

func (s *Server) handleInterviewSummary(w http.ResponseWriter, r *http.Request) {
	var body summaryBody
	if err := decodeJSON(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(body.Questions) == 0 {
		respondError(w, http.StatusBadRequest, "questions are required")
		return
	}

	job := body.Job.toJob()
	session := interview.NewSession(job)
	session.Questions = body.Questions
	session.Answers = body.Answers
	session.Scores = body.Scores
	session.Completed = true

	summary, err := s.interviewer.Summarize(r.Context(), session, job)
	if err != nil {
		logger := log.WithComponent("api")
		logger.Error().Err(err).Msg("summary generation failed")
		respondError(w, http.StatusBadGateway, "summary generation failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"summary": summary})
}
