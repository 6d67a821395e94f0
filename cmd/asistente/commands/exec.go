package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewExecCmd creates the one-shot command runner
func NewExecCmd() *cobra.Command {
	flags := &storeFlags{}

	cmd := &cobra.Command{
		Use:   "exec [command...]",
		Short: "Run a single assistant command",
		Long:  `Run one command against the local store and print the replies, e.g. "asistente exec tarea listar".`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}
			defer sess.close()

			line := strings.Join(args, " ")
			printMessages(cmd.OutOrStdout(), sess.interpreter.Interpret(cmd.Context(), line))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
