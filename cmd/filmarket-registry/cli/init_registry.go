package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/auth"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db"
	dbmodel "github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/tracing"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/services"
	"github.com/CrossChainLabs-FIL/filmarket-registry/pkg"
)

// InitRegistryCmd constructs the registry, recording the given account as
// its owner. Running it against an already initialized database fails
// without touching any state.
// Usage: ./filmarket-registry init-registry --account crosschain.near --config config.yml
func InitRegistryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-registry",
		Short: "Initialize the registry with the given account as owner",
		Args:  cobra.ExactArgs(0),
		RunE:  initRegistry,
	}

	cmd.Flags().String("account", "", "Account id to record as the registry owner")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func initRegistry(cmd *cobra.Command, _ []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())
	log := log.Ctx(ctx)

	account, err := cmd.Flags().GetString("account")
	if err != nil {
		return err
	}
	if err := pkg.ValidateAccountID(account); err != nil {
		return fmt.Errorf("invalid owner account: %w", err)
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return fmt.Errorf("failed to set up registry db model: %w", err)
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	service := services.NewService(cfg, dbClient, nil, nil)

	ctx = auth.WithAccount(ctx, account)
	if err := service.InitRegistry(ctx); err != nil {
		if db.IsDuplicateKeyError(err) {
			log.Fatal().Str("account", account).Msg("Registry already initialized")
		}
		return err
	}

	log.Info().Str("account", account).Msg("Registry initialized")
	return nil
}
