package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/dao-cli/internal/cli/render"
	"github.com/trebuchet-org/dao-cli/internal/usecase"
)

// NewRolesCmd creates the roles command
func NewRolesCmd() *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage treasury and token roles",
		Long: `Manage AccessControl roles on the treasury or the token (--scope).

Roles are named (DEFAULT_ADMIN_ROLE, CHAIRMAN_ROLE, MINTER_ROLE,
BURNER_ROLE) or given as 32-byte hex ids. Granting and revoking requires
DEFAULT_ADMIN_ROLE on the scope.

When run without subcommands, lists role members.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			listing, err := app.ManageRoles.List(cmd.Context(), usecase.RoleScope(scope))
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), listing)
			}
			return render.NewTokenRenderer(cmd.OutOrStdout()).RenderRoles(listing)
		},
	}

	cmd.PersistentFlags().StringVar(&scope, "scope", string(usecase.RoleScopeTreasury), "Contract whose roles are managed: treasury or token")

	cmd.AddCommand(newRoleCmd("grant", "Grant a role", "Granted", &scope,
		func(app *usecase.ManageRoles, cmd *cobra.Command, params usecase.RoleParams) (*usecase.RoleResult, error) {
			return app.Grant(cmd.Context(), params)
		}))
	cmd.AddCommand(newRoleCmd("revoke", "Revoke a role", "Revoked", &scope,
		func(app *usecase.ManageRoles, cmd *cobra.Command, params usecase.RoleParams) (*usecase.RoleResult, error) {
			return app.Revoke(cmd.Context(), params)
		}))
	cmd.AddCommand(newRoleCmd("check", "Check whether an account holds a role", "", &scope,
		func(app *usecase.ManageRoles, cmd *cobra.Command, params usecase.RoleParams) (*usecase.RoleResult, error) {
			return app.Check(cmd.Context(), params)
		}))

	return cmd
}

type roleOp func(app *usecase.ManageRoles, cmd *cobra.Command, params usecase.RoleParams) (*usecase.RoleResult, error)

func newRoleCmd(name, short, verb string, scope *string, op roleOp) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <role> <account>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			account, err := parseAddress(args[1])
			if err != nil {
				return err
			}
			result, err := op(app.ManageRoles, cmd, usecase.RoleParams{
				Scope:   usecase.RoleScope(*scope),
				Role:    args[0],
				Account: account,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewTokenRenderer(cmd.OutOrStdout()).RenderRole(verb, result)
		},
	}
}
