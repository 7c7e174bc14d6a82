package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"bible-trivia/internal/adapter"
	"bible-trivia/internal/cache"
	"bible-trivia/internal/config"
	"bible-trivia/internal/database"
	"bible-trivia/internal/domain"
	"bible-trivia/internal/environment"
	"bible-trivia/internal/logger"
	"bible-trivia/internal/repository"
	"bible-trivia/internal/service"

	"github.com/spf13/cobra"
)

var operator string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Staging-to-production content promotion for the trivia store",
	}

	cmd.PersistentFlags().StringVar(&operator, "operator", os.Getenv("PROMOTE_OPERATOR"),
		"operator id recorded as the authenticated caller")

	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newQuestionCmd())
	cmd.AddCommand(newCategoryCmd())
	cmd.AddCommand(newModeCmd())
	return cmd
}

// bootstrap loads configuration and wires the promotion pipeline against the
// live stores. The returned cleanup closes the database handle.
func bootstrap() (service.PromotionService, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg); err != nil {
		return nil, nil, err
	}

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := service.NewPromotionService(
		repository.NewCategoryStore(db),
		repository.NewQuestionStore(db),
		service.NewContextAuthChecker(),
		logger.Get(),
	)

	cleanup := func() {
		db.Close()
		logger.Sync()
	}
	return svc, cleanup, nil
}

// callerContext attaches the operator to the context. Production writes are
// refused further down when no operator was supplied.
func callerContext(ctx context.Context) context.Context {
	if operator == "" {
		return ctx
	}
	return domain.WithCaller(ctx, operator)
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Preview a batch run without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := svc.Summarize(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Flagged for promotion: %d\n", summary.TotalFlagged)
			fmt.Printf("Ready to migrate:      %d\n", summary.ReadyToMigrate)
			fmt.Printf("  with warnings only:  %d\n", summary.HasWarningsOnly)
			fmt.Printf("Blocked by errors:     %d\n", summary.HasErrors)
			for _, issue := range summary.ErrorDetails {
				fmt.Printf("\n  %s  %q\n", issue.QuestionID, domain.Truncate(issue.QuestionText, 60))
				for _, e := range issue.Errors {
					fmt.Printf("    - %s\n", e)
				}
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Promote every flagged staging question",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			result := svc.MigrateAll(callerContext(cmd.Context()))
			fmt.Println(result.Message)
			for _, f := range result.Failures {
				fmt.Printf("  failed %s %q: %s\n", f.QuestionID, domain.Truncate(f.QuestionText, 40), f.Reason)
			}
			if !result.Success {
				return result.Err
			}
			return nil
		},
	}
}

func newQuestionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "question <id>",
		Short: "Promote a single staging question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			result := svc.MigrateQuestion(callerContext(cmd.Context()), args[0])
			fmt.Println(result.Message)
			if !result.Success {
				return fmt.Errorf("%s", result.Code)
			}
			if !result.FlagCleared {
				fmt.Println("note: the staging flag is still set; the next batch run will skip this question as a duplicate")
			}
			return nil
		},
	}
}

func newCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category <id>",
		Short: "Copy a staging category into production",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			result := svc.PromoteCategory(callerContext(cmd.Context()), args[0])
			fmt.Println(result.Message)
			if !result.Success {
				return fmt.Errorf("%s", result.Code)
			}
			return nil
		},
	}
}

func newModeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode [get|set <mode>]",
		Short: "Inspect or switch the environment the app reads from",
	}

	withModeStore := func(run func(ctx context.Context, store environment.ModeStore) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := logger.Initialize(cfg); err != nil {
				return err
			}

			client, err := cache.NewRedisClient(cfg.Redis)
			if err != nil {
				return err
			}
			defer client.Close()

			return run(cmd.Context(), adapter.NewRedisModeStore(client))
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current environment mode",
		RunE: withModeStore(func(ctx context.Context, store environment.ModeStore) error {
			mode, err := store.Current(ctx)
			if err != nil {
				return err
			}
			fmt.Println(mode)
			return nil
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <mode>",
		Short: "Switch the environment mode (development or production)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			mode, err := environment.ParseMode(args[0])
			if err != nil {
				return err
			}
			return withModeStore(func(ctx context.Context, store environment.ModeStore) error {
				if err := store.Set(ctx, mode); err != nil {
					return err
				}
				log.Printf("environment mode set to %s", mode)
				return nil
			})(c, args)
		},
	})

	return cmd
}
