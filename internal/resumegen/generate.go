// Package resumegen produces tailored resumes for a specific job
// posting, as structured JSON rendered to text or DOCX.
package resumegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"careerlens/internal/azure"
	"careerlens/internal/resume"
)

// Header holds the contact block of a generated resume.
type Header struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Linkedin string `json:"linkedin"`
}

// ExperienceEntry is one position in the experience section.
type ExperienceEntry struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

// Resume is the structured tailored resume the model returns.
type Resume struct {
	Header            Header            `json:"header"`
	Summary           string            `json:"summary"`
	SkillsHighlighted []string          `json:"skills_highlighted"`
	Experience        []ExperienceEntry `json:"experience"`
	Education         string            `json:"education"`
	Certifications    string            `json:"certifications"`
}

// JobPosting is the subset of posting fields used for tailoring.
type JobPosting struct {
	Title       string
	Company     string
	Description string
	Skills      []string
}

// Generator tailors resumes through the chat model.
type Generator struct {
	azure *azure.Client
}

func NewGenerator(az *azure.Client) *Generator {
	return &Generator{azure: az}
}

// Generate builds a tailored resume from a profile, the target posting
// and optionally the raw resume text for extra context.
func (g *Generator) Generate(ctx context.Context, profile *resume.Profile, posting JobPosting, rawResumeText string) (*Resume, error) {
	description := posting.Description
	if len(description) > 3000 {
		description = description[:3000]
	}
	skills := posting.Skills
	if len(skills) > 10 {
		skills = skills[:10]
	}
	skillList := "N/A"
	if len(skills) > 0 {
		skillList = strings.Join(skills, ", ")
	}

	experience := profile.DetailedExperience
	if len(experience) > 2000 {
		experience = experience[:2000]
	}

	rawSection := ""
	if rawResumeText != "" {
		snippet := rawResumeText
		if len(snippet) > 2000 {
			snippet = snippet[:2000]
		}
		rawSection = fmt.Sprintf("\n\nORIGINAL RESUME TEXT (for reference):\n%s", snippet)
	}

	prompt := fmt.Sprintf(tailorPrompt,
		posting.Title, posting.Company, description, skillList,
		profile.Name, profile.Email, profile.Phone, profile.LocationPreference,
		profile.Linkedin, profile.Summary, experience,
		profile.EducationLevel, profile.HardSkills, profile.Certificates,
		rawSection,
	)

	content, err := g.azure.Chat(ctx, []azure.Message{
		{Role: "system", Content: tailorSystemPrompt},
		{Role: "user", Content: prompt},
	}, azure.ChatOptions{Temperature: 0.7, MaxTokens: 3000, JSONMode: true})
	if err != nil {
		return nil, fmt.Errorf("resume generation: %w", err)
	}

	var generated Resume
	if err := json.Unmarshal([]byte(azure.CleanJSON(content)), &generated); err != nil {
		return nil, fmt.Errorf("decode generated resume: %w", err)
	}
	return &generated, nil
}

// FormatText renders a resume as plain text with section dividers.
func FormatText(r *Resume) string {
	var b strings.Builder

	b.WriteString(r.Header.Name + "\n")
	if r.Header.Title != "" {
		b.WriteString(r.Header.Title + "\n")
	}
	contact := make([]string, 0, 4)
	for _, field := range []string{r.Header.Email, r.Header.Phone, r.Header.Location, r.Header.Linkedin} {
		if field != "" {
			contact = append(contact, field)
		}
	}
	b.WriteString(strings.Join(contact, " | ") + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if r.Summary != "" {
		b.WriteString("PROFESSIONAL SUMMARY\n")
		b.WriteString(r.Summary + "\n\n")
	}

	if len(r.SkillsHighlighted) > 0 {
		b.WriteString("KEY SKILLS\n")
		b.WriteString(strings.Join(r.SkillsHighlighted, " • ") + "\n\n")
	}

	if len(r.Experience) > 0 {
		b.WriteString("EXPERIENCE\n")
		for _, exp := range r.Experience {
			fmt.Fprintf(&b, "%s — %s (%s)\n", exp.Title, exp.Company, exp.Dates)
			for _, bullet := range exp.Bullets {
				b.WriteString("  - " + bullet + "\n")
			}
			b.WriteString("\n")
		}
	}

	if r.Education != "" {
		b.WriteString("EDUCATION\n")
		b.WriteString(r.Education + "\n\n")
	}

	if r.Certifications != "" {
		b.WriteString("CERTIFICATIONS\n")
		b.WriteString(r.Certifications + "\n")
	}

	return b.String()
}

// RenderDocx fills the placeholder fields of a .docx template with the
// resume content and writes the result to outPath. The template must
// contain {{name}}, {{title}}, {{contact}}, {{summary}}, {{skills}},
// {{experience}}, {{education}} and {{certifications}} placeholders.
func RenderDocx(r *Resume, templatePath, outPath string) error {
	tmpl, err := docx.ReadDocxFile(templatePath)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}
	defer tmpl.Close()

	doc := tmpl.Editable()

	contact := make([]string, 0, 4)
	for _, field := range []string{r.Header.Email, r.Header.Phone, r.Header.Location, r.Header.Linkedin} {
		if field != "" {
			contact = append(contact, field)
		}
	}

	var experience strings.Builder
	for _, exp := range r.Experience {
		fmt.Fprintf(&experience, "%s — %s (%s)\n", exp.Title, exp.Company, exp.Dates)
		for _, bullet := range exp.Bullets {
			experience.WriteString("• " + bullet + "\n")
		}
	}

	replacements := map[string]string{
		"{{name}}":           r.Header.Name,
		"{{title}}":          r.Header.Title,
		"{{contact}}":        strings.Join(contact, " | "),
		"{{summary}}":        r.Summary,
		"{{skills}}":         strings.Join(r.SkillsHighlighted, ", "),
		"{{experience}}":     experience.String(),
		"{{education}}":      r.Education,
		"{{certifications}}": r.Certifications,
	}
	for placeholder, value := range replacements {
		if err := doc.Replace(placeholder, value, -1); err != nil {
			return fmt.Errorf("replace %s: %w", placeholder, err)
		}
	}

	if err := doc.WriteToFile(outPath); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
