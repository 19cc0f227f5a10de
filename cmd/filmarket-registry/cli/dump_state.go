package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db"
)

// DumpStateCmd prints every stored provider and price snapshot as JSON
// lines, for operator debugging. Read-only.
func DumpStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump-state",
		Short: "Dump all providers and price snapshots as JSON lines",
		Args:  cobra.ExactArgs(0),
		RunE:  dumpState,
	}

	return cmd
}

func dumpState(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbClient, err := db.New(ctx, cfg.Db)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	providers, err := dbClient.GetAllStorageProviders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load storage providers: %w", err)
	}
	for _, provider := range providers {
		buff, err := json.Marshal(provider)
		if err != nil {
			return err
		}
		fmt.Printf("provider %s\n", string(buff))
	}

	snapshots, err := dbClient.GetAllPriceSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("failed to load price snapshots: %w", err)
	}
	for _, snapshot := range snapshots {
		buff, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		fmt.Printf("snapshot %s\n", string(buff))
	}

	return nil
}
