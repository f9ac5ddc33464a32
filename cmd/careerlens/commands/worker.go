package commands

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	"careerlens/internal/azure"
	"careerlens/internal/config"
	"careerlens/internal/database"
	"careerlens/internal/jobsearch"
	"careerlens/internal/log"
	"careerlens/internal/match"
	"careerlens/internal/pinecone"
	"careerlens/internal/resume"
	"careerlens/internal/storage"
	"careerlens/internal/worker"
)

func workerCmd() *cobra.Command {
	var workers int
	var cleanupDays int

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the match request consumer pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.Workers
			}

			db, err := sql.Open("postgres", cfg.DBURL)
			if err != nil {
				return fmt.Errorf("error opening db: %w", err)
			}
			defer db.Close()
			queries := database.New(db)

			awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
				awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
				awsconfig.WithRegion("auto"),
			)
			if err != nil {
				return fmt.Errorf("error creating aws config: %w", err)
			}

			conn, err := amqp.Dial(cfg.RabbitMQURL)
			if err != nil {
				return fmt.Errorf("error connecting to rabbitmq: %w", err)
			}
			defer conn.Close()

			az := azure.NewClient(cfg.Azure)
			workerConfig := &worker.Config{
				DB:          queries,
				Storage:     storage.New(awsCfg, cfg.R2),
				Azure:       az,
				Analyzer:    resume.NewAnalyzer(az),
				Matcher:     match.NewMatcher(az, pinecone.NewClient(cfg.Pinecone)),
				Search:      jobsearch.NewClient(cfg.RapidAPIKey, 10),
				RabbitMQURL: cfg.RabbitMQURL,
				RabbitConn:  conn,
			}

			logger := log.WithComponent("worker")
			if cleanupDays > 0 {
				cutoff := time.Now().AddDate(0, 0, -cleanupDays)
				removed, err := queries.CleanupOldMatches(context.Background(), cutoff)
				if err != nil {
					logger.Warn().Err(err).Msg("failed to clean up old matches")
				} else if removed > 0 {
					logger.Info().Int64("removed", removed).Int("days", cleanupDays).Msg("cleaned up old matches")
				}
			}

			logger.Info().Int("workers", workers).Msg("starting consumer worker pool")
			workerConfig.StartConsumerWorkerPool(workers)
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "number of consumer workers (default from WORKER_COUNT)")
	cmd.Flags().IntVar(&cleanupDays, "cleanup-days", 30, "delete matches older than this many days at startup (0 disables)")
	return cmd
}
