package main

import (
	"indocafe/internal/client"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(newUsersCreateCmd())

	return cmd
}

func newUsersCreateCmd() *cobra.Command {
	var req client.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision a staff account",
		Long: `Provisions a staff account. Every role except SUPER_ADMIN must be bound to an outlet with --outlet;
managers can be given extra outlets with --assign.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.Password == "" {
				req.Password = viper.GetString("new-password")
			}

			cred, err := credential()
			if err != nil {
				return err
			}
			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			user, err := c.CreateUser(ctx, cred, &req)
			if err != nil {
				return err
			}

			return printJSON(cmd, user)
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password (or INDOCAFE_NEW_PASSWORD)")
	cmd.Flags().StringVar(&req.Role, "role", "", "SUPER_ADMIN, OUTLET_MANAGER, CASHIER, KITCHEN, WAITER, DISPATCHER or RIDER")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().StringVar(&req.OutletID, "outlet", "", "primary outlet id")
	cmd.Flags().StringSliceVar(&req.AssignedOutletIDs, "assign", nil, "additional outlet ids")
	for _, name := range []string{"name", "email", "role"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
