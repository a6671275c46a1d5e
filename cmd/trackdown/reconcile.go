package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/relengtools/trackdown/internal/config"
	"github.com/relengtools/trackdown/internal/git"
	"github.com/relengtools/trackdown/internal/jira"
	"github.com/relengtools/trackdown/internal/ticket"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile [flags] SOURCE-KEY...",
	Short: "Report linked tickets with no matching commit",
	Long: `Expand source tracker issues (epics, parent tickets) into the set of
target-project tickets they link to, then report the tickets that no commit
in the repository mentions.

Only inward issue links are followed, one hop from each source issue, and
the linked keys are filtered by the target project prefix when --project is
set. Tracker credentials come from flags or a YAML config file; flags win.
Supply either a full username/password pair or a full token credential set,
or neither for anonymous access.

Examples:
  # Audit the tickets linked from one epic, anonymously
  trackdown reconcile --server https://issues.example.com --project LPS LPE-10001

  # Basic auth, explicit repository and branch
  trackdown reconcile --server https://issues.example.com --project LPS \
    --user jdoe --password s3cret -r ~/src/portal -b 6.2.x LPE-10001 LPE-10044

  # Credentials from a config file, strict identifier matching
  trackdown reconcile --config ~/.trackdown.yml --strict LPE-10001`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repoPath, _ := cmd.Flags().GetString("repository")
		branch, _ := cmd.Flags().GetString("branch")
		configPath, _ := cmd.Flags().GetString("config")
		strict, _ := cmd.Flags().GetBool("strict")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = cfg.Merge(flagConfig(cmd))

		if cfg.Server == "" {
			fmt.Fprintf(os.Stderr, "Error: tracker server is required (--server or config file)\n")
			os.Exit(1)
		}

		mode, err := jira.ResolveAuth(jira.Credentials{
			Username:    cfg.Username,
			Password:    cfg.Password,
			AccessToken: cfg.AccessToken,
			TokenSecret: cfg.TokenSecret,
			ConsumerKey: cfg.ConsumerKey,
			KeyCert:     cfg.KeyCert,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		ctx := context.Background()

		sourceKeys := make([]ticket.Key, len(args))
		for i, arg := range args {
			sourceKeys[i] = ticket.Key(arg)
		}

		session := jira.NewSession(jira.ClientOptions{RequestsPerSecond: cfg.RequestRate})
		if err := session.Open(ctx, mode, cfg.Server); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		targets, err := ticket.Expand(ctx, session, sourceKeys, cfg.Project)
		session.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if targets.Len() == 0 {
			yellow := color.New(color.FgYellow).SprintFunc()
			fmt.Printf("%s No linked target tickets found\n", yellow("⚠"))
			return
		}

		g, err := git.NewGit(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		commits, err := g.Log(ctx, repoPath, git.TicketFlags(targets.Strings(), branch))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		matchMode := ticket.MatchSubstring
		if strict {
			matchMode = ticket.MatchStrict
		}
		missing := ticket.Missing(targets, strings.Join(commits, "\n"), matchMode)

		if missing.Len() == 0 {
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s All %d ticket(s) have matching commits\n", green("✓"), targets.Len())
			return
		}

		red := color.New(color.FgRed).SprintFunc()
		fmt.Printf("%s %d of %d ticket(s) have no matching commit:\n", red("✗"), missing.Len(), targets.Len())
		for _, key := range missing.Keys() {
			fmt.Println(key)
		}
	},
}

// flagConfig collects the reconcile flags into a Config override.
func flagConfig(cmd *cobra.Command) *config.Config {
	server, _ := cmd.Flags().GetString("server")
	project, _ := cmd.Flags().GetString("project")
	user, _ := cmd.Flags().GetString("user")
	password, _ := cmd.Flags().GetString("password")
	token, _ := cmd.Flags().GetString("token")
	tokenSecret, _ := cmd.Flags().GetString("token-secret")
	consumerKey, _ := cmd.Flags().GetString("consumer-key")
	keyCert, _ := cmd.Flags().GetString("key-cert")
	rate, _ := cmd.Flags().GetFloat64("request-rate")

	return &config.Config{
		Server:      server,
		Project:     project,
		Username:    user,
		Password:    password,
		AccessToken: token,
		TokenSecret: tokenSecret,
		ConsumerKey: consumerKey,
		KeyCert:     keyCert,
		RequestRate: rate,
	}
}

func init() {
	reconcileCmd.Flags().StringP("repository", "r", ".", "Path to the git repository")
	reconcileCmd.Flags().StringP("branch", "b", "", "Branch to restrict the search to")
	reconcileCmd.Flags().String("config", "", "Path to a YAML config file")
	reconcileCmd.Flags().String("server", "", "Tracker base URL")
	reconcileCmd.Flags().String("project", "", "Target project prefix to keep linked tickets from")
	reconcileCmd.Flags().String("user", "", "Tracker username (basic auth)")
	reconcileCmd.Flags().String("password", "", "Tracker password (basic auth)")
	reconcileCmd.Flags().String("token", "", "Tracker access token")
	reconcileCmd.Flags().String("token-secret", "", "Tracker access token secret")
	reconcileCmd.Flags().String("consumer-key", "", "Tracker consumer key")
	reconcileCmd.Flags().String("key-cert", "", "Tracker key certificate")
	reconcileCmd.Flags().Float64("request-rate", 0, "Tracker requests per second (0 = default)")
	reconcileCmd.Flags().Bool("strict", false, "Reject ticket matches embedded in longer identifiers")
	rootCmd.AddCommand(reconcileCmd)
}
