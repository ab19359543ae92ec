package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/natividadesusana/drivenpass-go/internal/config"
	"github.com/natividadesusana/drivenpass-go/internal/database"
	"github.com/natividadesusana/drivenpass-go/internal/security"
	"github.com/natividadesusana/drivenpass-go/internal/tools/common"
	"github.com/natividadesusana/drivenpass-go/internal/tools/ui"
)

type options struct {
	envFile  string
	email    string
	password string
	ci       bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "seed", Short: "Development database seed tooling"}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().StringVar(&opts.email, "email", "demo@drivenpass.local", "seed account email")
	cmd.PersistentFlags().StringVar(&opts.password, "password", "Demo@Pass123", "seed account password")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newApplyCommand(opts), newDryRunCommand(opts))
	return cmd
}

func newApplyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Create the demo account and sample records",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed apply", func(ctx context.Context) ([]string, error) {
				cfg, db, err := loadConfigDB(opts.envFile)
				if err != nil {
					return nil, err
				}
				cipher, err := security.NewFieldCipher(cfg.VaultEncryptionKey)
				if err != nil {
					return nil, err
				}
				report, err := database.Seed(db, cipher, opts.email, opts.password)
				if err != nil {
					return nil, err
				}
				details := []string{fmt.Sprintf("seed account: %s", opts.email)}
				if report.CreatedUser {
					details = append(details, "created seed user")
				}
				details = append(details, fmt.Sprintf("created_records=%d", report.CreatedRecords))
				if report.Noop {
					details = append(details, "nothing to do")
				}
				return details, nil
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "seed apply", details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

func newDryRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dry-run",
		Short: "Show what seeding would do",
		RunE: func(cmd *cobra.Command, args []string) error {
			details, err := run(opts, "seed dry-run", func(ctx context.Context) ([]string, error) {
				if _, _, err := loadConfigDB(opts.envFile); err != nil {
					return nil, err
				}
				return []string{
					"would ensure seed account: " + opts.email,
					"would ensure one credential, one card and one note",
					"secret fields would be sealed with the configured vault key",
				}, nil
			})
			if opts.ci {
				common.PrintCIResult(err == nil, "seed dry-run", details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) ([]string, error) {
	if opts.ci {
		return fn(context.Background())
	}
	return ui.Run(title, fn)
}

func loadConfigDB(envFile string) (*config.Config, *gorm.DB, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
