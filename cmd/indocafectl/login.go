package main

import (
	"fmt"
	"time"

	"indocafe/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain an access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = viper.GetString("password")
			}

			c, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			result, err := c.Login(ctx, email, password)
			if err != nil {
				return err
			}

			if save {
				viper.Set("token", result.AccessToken)
				if err := writeConfig(); err != nil {
					return err
				}
			}

			if viper.GetBool("json") {
				return printJSON(cmd, result)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s), token expires in %s\n",
				result.User.Email, result.User.Role, util.FormatDuration(time.Until(result.ExpiresAt)))
			if !save {
				fmt.Fprintln(cmd.OutOrStdout(), result.AccessToken)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "staff email")
	cmd.Flags().StringVar(&password, "password", "", "password (or INDOCAFE_PASSWORD)")
	cmd.Flags().BoolVar(&save, "save", false, "store the token in the config file")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func writeConfig() error {
	if err := viper.WriteConfig(); err == nil {
		return nil
	}

	if cfgFile != "" {
		return errors.Wrap(viper.WriteConfigAs(cfgFile), "failed to write config")
	}

	return errors.Wrap(viper.SafeWriteConfig(), "failed to write config")
}

func newWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the profile behind the current token",
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			user, err := c.Me(ctx, cred)
			if err != nil {
				return err
			}

			return printJSON(cmd, user)
		},
	}
}
