package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// elvishCompletionTemplate is a hand-written completer: unlike bash/zsh/fish/
// powershell, neither cobra nor any CLI framework in the example corpus
// ships an elvish generator, so there is no library call to make here.
const elvishCompletionTemplate = `
use str

set edit:completion:arg-completer[%[1]s] = {|@words|
    var n = (count $words)
    if (== $n 2) {
        put completions run version help
    }
}
`

// completionsCmd emits a shell completion script for the named shell on
// stdout, per spec.md §6.
var completionsCmd = &cobra.Command{
	Use:       "completions [bash|zsh|fish|powershell|elvish]",
	Short:     "generate shell completion scripts",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell", "elvish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		switch args[0] {
		case "bash":
			return root.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return root.GenZshCompletion(os.Stdout)
		case "fish":
			return root.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(os.Stdout)
		case "elvish":
			_, err := fmt.Fprintf(os.Stdout, elvishCompletionTemplate, root.Name())
			return err
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	},
}
