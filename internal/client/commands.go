package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const annotationAuth = "auth"

// Command builds the root command with every subcommand attached.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "notes",
		Short:         "Command line client of the notes server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationAuth] != "true" {
				return nil
			}
			return a.auth.Restore(cmd.Context())
		},
	}

	root.AddCommand(
		a.registerCmd(),
		a.loginCmd(),
		a.logoutCmd(),
		a.profileCmd(),
		a.passwdCmd(),
		a.versionCmd(),
		a.notesCmd(),
	)

	return root
}

// authenticated marks cmd as needing a restored session.
func authenticated(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationAuth] = "true"
	return cmd
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Client version: %s (%s, %s)\n",
				a.build.BuildVersion(), a.build.BuildDate(), a.build.BuildCommit())

			v, err := a.server.Version(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("server version unavailable")
				fmt.Fprintln(out, "Server version: unavailable")
				return nil
			}
			fmt.Fprintf(out, "Server version: %s (%s, %s)\n", v.Version, v.BuildDate, v.BuildCommit)
			return nil
		},
	}
}

func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNoteID, arg)
	}
	return id, nil
}

// askNewPassphrase prompts twice and requires both entries to match.
func (a *App) askNewPassphrase() (string, error) {
	first, err := a.readSecret("Passphrase: ")
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", ErrEmptyPassphrase
	}

	second, err := a.readSecret("Repeat passphrase: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", ErrPassphraseMismatch
	}

	return first, nil
}
