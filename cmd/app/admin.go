package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/akyairhashvil/momentum/internal/auth"
	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/database"
)

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			db, err := database.Open(cmd.Context(), cfg.DatabaseURL, database.WithTimeout(cfg.DBTimeout))
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%s)\n", db.Dialect())
			return nil
		},
	}
}

type useraddOptions struct {
	email         string
	firstName     string
	lastName      string
	passwordStdin bool
}

func newUseraddCmd(flags *rootFlags) *cobra.Command {
	opts := &useraddOptions{}
	cmd := &cobra.Command{
		Use:   "useradd",
		Short: "Create an account",
		Long: `Create an account from the command line.

The password is prompted for twice on a terminal, or read from the first
line of stdin with --password-stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			pass, err := readPassword(cmd, opts.passwordStdin)
			if err != nil {
				return err
			}
			db, err := database.Open(cmd.Context(), cfg.DatabaseURL, database.WithTimeout(cfg.DBTimeout))
			if err != nil {
				return err
			}
			defer db.Close()

			req := contract.RegisterRequest{Email: opts.email, Password: pass}
			if opts.firstName != "" {
				req.FirstName = &opts.firstName
			}
			if opts.lastName != "" {
				req.LastName = &opts.lastName
			}
			user, err := auth.NewService(db, auth.Config{}, zap.NewNop()).CreateAccount(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&opts.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&opts.lastName, "last-name", "", "last name")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "read the password from stdin")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		return readLine(cmd.InOrStdin())
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal, use --password-stdin")
	}
	pass, err := promptForPassword(cmd.ErrOrStderr(), fd, "Password: ")
	if err != nil {
		return "", err
	}
	confirm, err := promptForPassword(cmd.ErrOrStderr(), fd, "Confirm password: ")
	if err != nil {
		return "", err
	}
	if pass != confirm {
		return "", errors.New("passwords do not match")
	}
	return pass, nil
}

func promptForPassword(w io.Writer, fd int, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	return strings.TrimSpace(string(pass)), err
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
