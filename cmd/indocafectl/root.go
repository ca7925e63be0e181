package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"indocafe/internal/client"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "INDOCAFE"
	defaultServer  = "http://localhost:8080"
	requestTimeout = 30 * time.Second
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "indocafectl",
	Short:         "Administers the IndoCafe chain from the command line",
	Long:          `indocafectl talks to the IndoCafe API to manage the catalog, outlet overrides, outlets and staff accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.indocafectl.yaml)")
	rootCmd.PersistentFlags().String("server", defaultServer, "API base URL")
	rootCmd.PersistentFlags().String("token", "", "access token (or INDOCAFE_TOKEN)")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON")

	cobra.CheckErr(viper.BindPFlags(rootCmd.PersistentFlags()))

	rootCmd.AddCommand(newLoginCmd(), newWhoAmICmd(), newMenuCmd(), newOutletsCmd(), newUsersCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".indocafectl")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() (*client.Client, error) {
	return client.New(viper.GetString("server"))
}

// credential resolves the token for this invocation only.
func credential() (client.Credential, error) {
	token := strings.TrimSpace(viper.GetString("token"))
	if token == "" {
		return client.Credential{}, errors.New("no access token: run `indocafectl login` or set --token / INDOCAFE_TOKEN")
	}

	return client.Bearer(token), nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), requestTimeout)
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}
