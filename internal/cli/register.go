package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayflow-app/dayflow/internal/daemon"
)

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email (required)")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (required)")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(registerCmd)
}

var (
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register USERNAME",
	Short: "Create a local account",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

func runRegister(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	u, err := d.Accounts.Register(context.Background(), args[0], registerEmail, registerPassword)
	if err != nil {
		return err
	}

	fmt.Printf("Registered %s (user %d)\n", u.Username, u.ID)
	return nil
}
