package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Utilitários de configuração",
	}

	initCmd := &cobra.Command{
		Use:         "init [path]",
		Short:       "Escreve o arquivo de configuração com os valores padrão",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.DefaultConfigFile
			}
			if err := config.WriteDefaults(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated default config at: %s\n", path)
			return nil
		},
	}

	cmd.AddCommand(initCmd)
	return cmd
}
