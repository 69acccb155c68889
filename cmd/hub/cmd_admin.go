package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmadsvu/stationery-hub-frontend/config"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/adminsession"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/statefile"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the local admin session",
}

func init() {
	adminCmd.AddCommand(adminLoginCmd)
	adminCmd.AddCommand(adminLogoutCmd)
	adminCmd.AddCommand(adminWhoamiCmd)
}

func sessionManager() (*adminsession.Manager, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	files, err := statefile.New(config.StateDir())
	if err != nil {
		return nil, err
	}
	return adminsession.NewManager(backend.New(), files), nil
}

// hub admin login — authenticate and persist a session.
var adminLoginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in against the shop backend",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := sessionManager()
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)

		username := ""
		if len(args) == 1 {
			username = args[0]
		} else {
			fmt.Print("Username: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			username = strings.TrimSpace(line)
		}

		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password := strings.TrimSpace(line)

		session, err := mgr.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", session.Username, session.Role)
		return nil
	},
}

// hub admin logout — drop the local session.
var adminLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the local admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := sessionManager()
		if err != nil {
			return err
		}
		if err := mgr.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

// hub admin whoami — show the current session.
var adminWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := sessionManager()
		if err != nil {
			return err
		}

		session, err := mgr.Current()
		if err != nil {
			fmt.Println("Not logged in.")
			os.Exit(1)
		}

		fmt.Printf("%s (%s), logged in %s\n",
			session.Username, session.Role, session.LoggedInAt.Format("2006-01-02 15:04"))
		return nil
	},
}
