package commands

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

// NewReplCmd creates the interactive chat command
func NewReplCmd() *cobra.Command {
	flags := &storeFlags{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat session",
		Long:  `Read commands from stdin and print the assistant replies. Type "salir" or press Ctrl-D to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}
			defer sess.close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, `Asistente Personal. Escribe "ayuda" para ver los comandos disponibles.`)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				line := scanner.Text()
				if line == "salir" {
					break
				}
				if line == "" {
					continue
				}
				printMessages(out, sess.interpreter.Interpret(cmd.Context(), line))
			}
			return scanner.Err()
		},
	}

	flags.register(cmd)
	return cmd
}
