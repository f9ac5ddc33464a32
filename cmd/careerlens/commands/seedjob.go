package commands

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"careerlens/internal/config"
	"careerlens/internal/database"
)

func seedJobCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed-job",
		Short: "Insert a sample headhunter job posting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := sql.Open("postgres", cfg.DBURL)
			if err != nil {
				return fmt.Errorf("error opening db: %w", err)
			}
			defer db.Close()
			queries := database.New(db)

			if !force {
				existing, err := queries.ListHeadHunterJobs(cmd.Context())
				if err != nil {
					return fmt.Errorf("error listing jobs: %w", err)
				}
				if len(existing) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Database already has %d jobs, skipping seed. Use --force to insert anyway.\n", len(existing))
					return nil
				}
			}

			id, err := queries.CreateHeadHunterJob(cmd.Context(), database.CreateHeadHunterJobParams{
				JobTitle:             "Senior Software Engineer",
				JobDescription:       "We are looking for an experienced Software Engineer to join our team. You will be responsible for building high-quality, scalable web applications.",
				MainResponsibilities: "- Design and implement scalable web services\n- Collaborate with frontend engineers\n- Mentor junior developers",
				RequiredSkills:       "Python, Django, React, SQL, AWS",
				ClientCompany:        "TechCorp Inc.",
				Industry:             "Technology",
				WorkLocation:         "Remote",
				EmploymentType:       "Full-time",
				ExperienceLevel:      "Senior (5+ years)",
				MinSalary:            sql.NullFloat64{Float64: 120000, Valid: true},
				MaxSalary:            sql.NullFloat64{Float64: 160000, Valid: true},
				Currency:             "USD",
				Languages:            "English",
			})
			if err != nil {
				return fmt.Errorf("error seeding job: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded sample job %s\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "insert even if jobs already exist")
	return cmd
}
