package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/storage/gormdb"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria ou atualiza as tabelas do banco",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := gormdb.Open(a.cfg.Database, a.log)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer gormdb.Close(db)

			if err := gormdb.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database migration complete (%s).\n", a.cfg.Database.Driver)
			return nil
		},
	}
}
