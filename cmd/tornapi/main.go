package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/39C-wallenstein/torn-api/api/client"
	"github.com/39C-wallenstein/torn-api/api/faction"
	tornhttp "github.com/39C-wallenstein/torn-api/api/http"
	"github.com/39C-wallenstein/torn-api/api/key"
	"github.com/39C-wallenstein/torn-api/api/market"
	"github.com/39C-wallenstein/torn-api/api/torn"
	"github.com/39C-wallenstein/torn-api/api/user"
	"github.com/39C-wallenstein/torn-api/cache"
	"github.com/39C-wallenstein/torn-api/config"
	"github.com/39C-wallenstein/torn-api/history"
	"github.com/39C-wallenstein/torn-api/internal"
)

// Set via ldflags at release time.
var (
	GitCommit  string
	GitVersion string
)

var (
	flagKey         string
	flagComment     string
	flagSelections  []string
	flagFrom        int64
	flagTo          int64
	flagLimit       int
	flagDebug       bool
	flagInteractive bool
)

var shortByCategory = map[string]string{
	user.Category:    "Query a player, or yourself when no ID is given",
	faction.Category: "Query a faction, or your own when no ID is given",
	torn.Category:    "Query city wide data like items, stocks and territory",
	market.Category:  "Query item market and bazaar listings",
	key.Category:     "Report on the API key making the request",
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "tornapi",
		Short: "Query the Torn City API from the command line",
		Long: "A typed command line client for the Torn City API with response\n" +
			"caching, a request journal and an interactive mode.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			internal.InitLogger(flagDebug)
		},
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVar(&flagKey, "key", "", "API key to use for this invocation")
	rootCmd.PersistentFlags().StringVar(&flagComment, "comment", "", "Comment appended to every request for key usage tracking")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "Print request and response details")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Start an interactive session")

	rootCmd.SilenceUsage = true

	for _, category := range []string{user.Category, faction.Category, torn.Category, market.Category, key.Category} {
		rootCmd.AddCommand(newQueryCmd(category))
	}
	rootCmd.AddCommand(newHistoryCmd(), newConfigCmd(), newVersionCmd(), newCompletionsCmd())

	viper.AutomaticEnv()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	if !flagInteractive {
		return cmd.Help()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c, err := buildClient(cfg)
	if err != nil {
		return err
	}

	return runInteractive(cmd.Context(), cfg, c)
}

func newQueryCmd(category string) *cobra.Command {
	use := fmt.Sprintf("%s [id]", category)
	validator := cobra.MaximumNArgs(1)
	if category == key.Category {
		use = key.Category
		validator = cobra.NoArgs
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: shortByCategory[category],
		Args:  validator,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, category, args)
		},
	}

	cmd.Flags().StringSliceVarP(&flagSelections, "selections", "s", nil, "Selections to request, comma separated")

	switch category {
	case user.Category, faction.Category, torn.Category:
		cmd.Flags().Int64Var(&flagFrom, "from", 0, "Only include entries after this unix timestamp")
		cmd.Flags().Int64Var(&flagTo, "to", 0, "Only include entries before this unix timestamp")
		cmd.Flags().IntVar(&flagLimit, "limit", 0, "Cap the number of returned entries")
	}

	return cmd
}

func runQuery(cmd *cobra.Command, category string, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c, err := buildClient(cfg)
	if err != nil {
		return err
	}

	var (
		id    int64
		hasID bool
	)
	if len(args) > 0 {
		id, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}
		hasID = true
	}

	raw, err := query(cmd.Context(), c, category, id, hasID, flagSelections)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), raw)
}

// query runs one request against the section named by category and
// returns the raw response body.
func query(ctx context.Context, c *client.Client, category string, id int64, hasID bool, selections []string) ([]byte, error) {
	switch category {
	case user.Category:
		req := c.User()
		if hasID {
			req.ID(id)
		}
		for _, s := range selections {
			req.Selections(user.Selection(s))
		}
		if flagFrom > 0 {
			req.From(time.Unix(flagFrom, 0))
		}
		if flagTo > 0 {
			req.To(time.Unix(flagTo, 0))
		}
		if flagLimit > 0 {
			req.Limit(flagLimit)
		}
		response, err := req.Send(ctx)
		if err != nil {
			return nil, err
		}
		return response.Raw(), nil

	case faction.Category:
		req := c.Faction()
		if hasID {
			req.ID(id)
		}
		for _, s := range selections {
			req.Selections(faction.Selection(s))
		}
		if flagFrom > 0 {
			req.From(time.Unix(flagFrom, 0))
		}
		if flagTo > 0 {
			req.To(time.Unix(flagTo, 0))
		}
		if flagLimit > 0 {
			req.Limit(flagLimit)
		}
		response, err := req.Send(ctx)
		if err != nil {
			return nil, err
		}
		return response.Raw(), nil

	case torn.Category:
		req := c.Torn()
		if hasID {
			req.ID(id)
		}
		for _, s := range selections {
			req.Selections(torn.Selection(s))
		}
		if flagFrom > 0 {
			req.From(time.Unix(flagFrom, 0))
		}
		if flagTo > 0 {
			req.To(time.Unix(flagTo, 0))
		}
		if flagLimit > 0 {
			req.Limit(flagLimit)
		}
		response, err := req.Send(ctx)
		if err != nil {
			return nil, err
		}
		return response.Raw(), nil

	case market.Category:
		req := c.Market()
		if hasID {
			req.ID(id)
		}
		for _, s := range selections {
			req.Selections(market.Selection(s))
		}
		response, err := req.Send(ctx)
		if err != nil {
			return nil, err
		}
		return response.Raw(), nil

	case key.Category:
		req := c.Key()
		for _, s := range selections {
			req.Selections(key.Selection(s))
		}
		response, err := req.Send(ctx)
		if err != nil {
			return nil, err
		}
		return response.Raw(), nil
	}

	return nil, fmt.Errorf("unknown category %q", category)
}

func loadConfig() (config.Config, error) {
	manager := config.NewManager(config.New()).WithEnvironment()

	if _, err := manager.ResolveAPIKey(); err != nil {
		return config.Config{}, err
	}

	cfg := manager.Config
	if envKey := viper.GetString(cfg.APIKeyEnvVarName()); envKey != "" {
		cfg.APIKey = envKey
	}
	if flagKey != "" {
		cfg.APIKey = flagKey
	}
	if flagComment != "" {
		cfg.Comment = flagComment
	}
	if flagDebug {
		cfg.Debug = true
	}

	return cfg, nil
}

func buildClient(cfg config.Config) (*client.Client, error) {
	c, err := client.New(tornhttp.RealCallerFactory, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.CacheTTL > 0 {
		if cacheHome, err := internal.GetCacheHome(); err == nil {
			c.WithCache(cache.New(cache.NewFileStore(cacheHome), time.Duration(cfg.CacheTTL)*time.Second))
		}
	}

	if !cfg.OmitHistory {
		c.WithHistory(history.New())
	}

	return c, nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the request journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := history.NewManager(history.New()).Print()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Wipe the request journal",
		RunE: func(_ *cobra.Command, _ []string) error {
			return history.NewManager(history.New()).Clear()
		},
	})

	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the active configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.NewManager(config.New()).WithEnvironment().ShowConfig()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the active configuration to the config file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.NewManager(config.New()).WithEnvironment().SaveConfig()
		},
	})

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	}
}

func versionString() string {
	version := internal.Version
	if GitVersion != "" {
		version = GitVersion
	}
	if GitCommit != "" {
		return fmt.Sprintf("tornapi %s (%s)", version, GitCommit)
	}
	return "tornapi " + version
}

func printJSON(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteString("\n")

	_, err := buf.WriteTo(w)
	return err
}
