package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	"careerlens/internal/api"
	"careerlens/internal/azure"
	"careerlens/internal/config"
	"careerlens/internal/database"
	"careerlens/internal/storage"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.APIAddr
			}

			db, err := sql.Open("postgres", cfg.DBURL)
			if err != nil {
				return fmt.Errorf("error opening db: %w", err)
			}
			defer db.Close()

			conn, err := amqp.Dial(cfg.RabbitMQURL)
			if err != nil {
				return fmt.Errorf("error connecting to rabbitmq: %w", err)
			}
			defer conn.Close()

			awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
				awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.R2.AccessKey, cfg.R2.SecretKey, "")),
				awsconfig.WithRegion("auto"),
			)
			if err != nil {
				return fmt.Errorf("error creating aws config: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(database.New(db), conn, azure.NewClient(cfg.Azure),
				storage.New(awsCfg, cfg.R2), cfg.ResumeTemplate)
			return server.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from API_ADDR)")
	return cmd
}
