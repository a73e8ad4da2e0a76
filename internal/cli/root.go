package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/config"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/platform/logger"
)

const skipConfig = "skip-config"

// app guarda el estado compartido por los subcomandos.
type app struct {
	cfgFile string
	cfg     config.Config
	log     logger.Logger
}

// NewRootCmd arma el comando raíz con todos los subcomandos.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "shelter",
		Short: "Serviço do abrigo de gatos Resgatando Vidas 4 Patas",
		Long: `shelter publica o catálogo de gatos, recebe solicitações de adoção e de
lar temporário e serve o painel dos administradores.

Precedência da configuração (maior para menor):
  1. Variáveis de ambiente (SHELTER_*, DATABASE_URL, PORT)
  2. Arquivo de configuração (--config ou ./shelter.yaml)
  3. Valores padrão`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipConfig] == "true" {
				return nil
			}
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.cfg = cfg
			a.log = logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: logger.ParseFormat(cfg.Log.Format),
				App:    "shelter",
			})
			return nil
		},
	}

	root.SetVersionTemplate("{{.Version}}\n")
	root.Flags().BoolP("version", "V", false, "version for shelter")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"config file (default: ./shelter.yaml)")

	root.AddCommand(
		newServeCmd(a),
		newMigrateCmd(a),
		newCreateAdminCmd(a),
		newConfigCmd(a),
	)
	return root
}

// Execute corre el CLI y devuelve el exit code.
func Execute(ctx context.Context, version string, stderr io.Writer) int {
	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
