// Package interview generates AI interview questions, evaluates answers
// and produces a final summary report for a practice session.
package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careerlens/internal/azure"
)

// Job carries the posting fields the interviewer prompts are built from.
type Job struct {
	ID               string
	Title            string
	Company          string
	Industry         string
	Experience       string
	Description      string
	Responsibilities string
	Skills           string
}

// SeekerProfile carries the candidate background included in prompts.
type SeekerProfile struct {
	Education         string
	Experience        string
	HardSkills        string
	SoftSkills        string
	ProjectExperience string
}

// QA is one asked question with its answer.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Evaluation is the scored review of a single answer.
type Evaluation struct {
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Session tracks one practice interview.
type Session struct {
	JobID           string       `json:"job_id"`
	JobTitle        string       `json:"job_title"`
	Company         string       `json:"company"`
	CurrentQuestion int          `json:"current_question"`
	TotalQuestions  int          `json:"total_questions"`
	Questions       []string     `json:"questions"`
	Answers         []string     `json:"answers"`
	Scores          []Evaluation `json:"scores"`
	Completed       bool         `json:"completed"`
	Summary         string       `json:"summary,omitempty"`
}

// NewSession creates the initial session state for a job.
func NewSession(job Job) *Session {
	return &Session{
		JobID:          job.ID,
		JobTitle:       job.Title,
		Company:        job.Company,
		TotalQuestions: 2,
	}
}

// Interviewer drives the model calls for a session.
type Interviewer struct {
	azure *azure.Client
}

func NewInterviewer(az *azure.Client) *Interviewer {
	return &Interviewer{azure: az}
}

func jobInfo(job Job) string {
	return fmt.Sprintf(`Position Title: %s
Company: %s
Industry: %s
Experience Requirement: %s
Job Description: %s
Main Responsibilities: %s
Required Skills: %s`,
		job.Title, job.Company, job.Industry, job.Experience,
		job.Description, job.Responsibilities, job.Skills)
}

func seekerInfo(profile *SeekerProfile) string {
	if profile == nil {
		return ""
	}
	return fmt.Sprintf(`Job Seeker Background:
- Education: %s
- Experience: %s
- Hard Skills: %s
- Soft Skills: %s
- Project Experience: %s`,
		profile.Education, profile.Experience, profile.HardSkills,
		profile.SoftSkills, profile.ProjectExperience)
}

// NextQuestion asks the model for an interview question. With a previous
// QA it produces a follow-up digging into the prior answer.
func (iv *Interviewer) NextQuestion(ctx context.Context, job Job, profile *SeekerProfile, previous *QA) (string, error) {
	var prompt string
	if previous != nil {
		prompt = fmt.Sprintf(followUpQuestionPrompt, jobInfo(job), seekerInfo(profile), previous.Question, previous.Answer)
	} else {
		prompt = fmt.Sprintf(firstQuestionPrompt, jobInfo(job), seekerInfo(profile))
	}

	content, err := iv.azure.Chat(ctx, []azure.Message{
		{Role: "system", Content: interviewerSystemPrompt},
		{Role: "user", Content: prompt},
	}, azure.ChatOptions{Temperature: 0.8, MaxTokens: 500})
	if err != nil {
		return "", fmt.Errorf("question generation: %w", err)
	}
	return strings.TrimSpace(content), nil
}

// Evaluate scores an answer 0-10 with feedback.
func (iv *Interviewer) Evaluate(ctx context.Context, job Job, question, answer string) (*Evaluation, error) {
	prompt := fmt.Sprintf(evaluationPrompt, job.Title, job.Company, job.Skills, question, answer)

	content, err := iv.azure.Chat(ctx, []azure.Message{
		{Role: "system", Content: evaluatorSystemPrompt},
		{Role: "user", Content: prompt},
	}, azure.ChatOptions{Temperature: 0.7, MaxTokens: 800, JSONMode: true})
	if err != nil {
		return nil, fmt.Errorf("answer evaluation: %w", err)
	}

	var eval Evaluation
	if err := json.Unmarshal([]byte(azure.CleanJSON(content)), &eval); err != nil {
		return nil, fmt.Errorf("decode evaluation: %w", err)
	}
	return &eval, nil
}

// Summarize produces the final report over all recorded Q&A.
func (iv *Interviewer) Summarize(ctx context.Context, session *Session, job Job) (string, error) {
	var history strings.Builder
	for i, q := range session.Questions {
		answer := ""
		if i < len(session.Answers) {
			answer = session.Answers[i]
		}
		score := "N/A"
		feedback := ""
		if i < len(session.Scores) {
			score = fmt.Sprintf("%d", session.Scores[i].Score)
			feedback = session.Scores[i].Feedback
		}
		fmt.Fprintf(&history, "Question %d: %s\nAnswer: %s\nScore: %s\nFeedback: %s\n\n", i+1, q, answer, score, feedback)
	}

	prompt := fmt.Sprintf(summaryPrompt, job.Title, job.Company, job.Skills, history.String())

	content, err := iv.azure.Chat(ctx, []azure.Message{
		{Role: "system", Content: evaluatorSystemPrompt},
		{Role: "user", Content: prompt},
	}, azure.ChatOptions{Temperature: 0.7, MaxTokens: 1200})
	if err != nil {
		return "", fmt.Errorf("summary generation: %w", err)
	}
	return strings.TrimSpace(content), nil
}
