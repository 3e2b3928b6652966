package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/39C-wallenstein/torn-api/api"
	"github.com/39C-wallenstein/torn-api/api/client"
	"github.com/39C-wallenstein/torn-api/api/user"
	"github.com/39C-wallenstein/torn-api/cmd/tornapi/utils"
	"github.com/39C-wallenstein/torn-api/config"
	"github.com/39C-wallenstein/torn-api/history"
)

// runInteractive drives the REPL. Queries take the same shape as the
// subcommands: a category, an optional ID and comma separated selections.
func runInteractive(ctx context.Context, cfg config.Config, c *client.Client) error {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("user"),
		readline.PcItem("faction"),
		readline.PcItem("torn"),
		readline.PcItem("market"),
		readline.PcItem("key"),
		readline.PcItem("history"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), "tornapi_readline.tmp"),
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	counter := 1
	for {
		rl.SetPrompt(config.FormatPrompt(cfg.CommandPrompt, counter, time.Now()))

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case "exit", "quit":
			return nil
		case "help":
			printInteractiveHelp()
			continue
		case "history":
			out, err := history.NewManager(history.New()).Print()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else {
				fmt.Print(out)
			}
			continue
		}

		if err := dispatch(ctx, c, line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		counter++
	}
}

func dispatch(ctx context.Context, c *client.Client, line string) error {
	fields := strings.Fields(line)
	category := fields[0]
	rest := fields[1:]

	var (
		id    int64
		hasID bool
	)
	if len(rest) > 0 {
		if parsed, err := strconv.ParseInt(rest[0], 10, 64); err == nil {
			id = parsed
			hasID = true
			rest = rest[1:]
		}
	}

	var selections []string
	for _, field := range rest {
		selections = append(selections, strings.Split(field, ",")...)
	}

	raw, err := query(ctx, c, category, id, hasID, selections)
	if err != nil {
		return err
	}

	if category == user.Category {
		printStatusLine(raw)
	}

	return printJSON(os.Stdout, raw)
}

// printStatusLine shows a colored one line summary when the response
// carries a player status.
func printStatusLine(raw []byte) {
	parsed, err := api.ParseResponse(raw)
	if err != nil || !parsed.Has("status") {
		return
	}

	var basic user.Basic
	if err := parsed.Decode(&basic); err != nil || basic.Status.Description == "" {
		return
	}

	fmt.Println(utils.FormatStatus(basic.Name, basic.Status))
}

func printInteractiveHelp() {
	fmt.Println(`Queries take the form:

  <category> [id] [selections]

Categories: user, faction, torn, market, key.
Selections are comma separated, for example:

  user 2383326 basic,profile
  faction chain
  torn items
  market 206 bazaar
  key info

Other commands: history, help, exit.`)
}
