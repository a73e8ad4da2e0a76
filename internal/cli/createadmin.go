package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/adapters/storage/gormdb"
	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/admins"
)

// PasswordEnv evita pasar la contraseña por argv.
const PasswordEnv = "SHELTER_ADMIN_PASSWORD"

func newCreateAdminCmd(a *app) *cobra.Command {
	var in admins.CreateInput

	cmd := &cobra.Command{
		Use:   "createadmin",
		Short: "Cria uma conta de administrador",
		Example: `  SHELTER_ADMIN_PASSWORD=segredo123 shelter createadmin \
    --usuario ana --email ana@abrigo.org --nome "Ana"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Password == "" {
				in.Password = os.Getenv(PasswordEnv)
			}
			if strings.TrimSpace(in.Password) == "" {
				return fmt.Errorf("password required: use --senha or %s", PasswordEnv)
			}

			db, err := gormdb.Open(a.cfg.Database, a.log)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer gormdb.Close(db)

			if err := gormdb.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}

			svc := admins.NewService(gormdb.NewAdminsRepo(db), a.cfg.Auth.SessionTTL)
			adm, err := svc.Create(commandContext(cmd), in)
			if err != nil {
				if errors.Is(err, admins.ErrDuplicate) {
					return fmt.Errorf("admin %q or e-mail %q already exists", in.Username, in.Email)
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s (%s) created with id %d.\n", adm.Username, adm.Email, adm.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "nome", "", "nome de exibição")
	cmd.Flags().StringVar(&in.Username, "usuario", "", "nome de usuário (login)")
	cmd.Flags().StringVar(&in.Email, "email", "", "e-mail (login)")
	cmd.Flags().StringVar(&in.Password, "senha", "", "senha (prefira "+PasswordEnv+")")
	_ = cmd.MarkFlagRequired("usuario")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
