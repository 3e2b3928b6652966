package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCompletionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completions [bash|zsh|fish|powershell]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(tornapi completions bash)

  # To load completions for each session, execute once:
  # Linux:
  $ tornapi completions bash > /etc/bash_completion.d/tornapi
  # macOS:
  $ tornapi completions bash > /usr/local/etc/bash_completion.d/tornapi

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ tornapi completions zsh > "${fpath[1]}/_tornapi"

  # You will need to start a new shell for this setup to take effect.

fish:

  $ tornapi completions fish | source

  # To load completions for each session, execute once:
  $ tornapi completions fish > ~/.config/fish/completions/tornapi.fish

PowerShell:

  PS> tornapi completions powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> tornapi completions powershell > tornapi.ps1
  # and source this file from your PowerShell profile.
`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}
