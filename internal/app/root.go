// Package app contains the Cobra command tree for tweetscore.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/feedforge/tweetscore/internal/auth"
	"github.com/feedforge/tweetscore/internal/config"
	"github.com/feedforge/tweetscore/internal/output"
	"github.com/feedforge/tweetscore/internal/quota"
	"github.com/feedforge/tweetscore/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "tweetscore",
	Short: "Score a post before you publish it",
	Long: `tweetscore rates a short text post against a fixed set of heuristics:
length, hashtags, emojis, engagement hooks, sentiment, and structure. It
reports an overall score, where the post is weak, concrete suggestions,
and the best time slot to publish.

Scoring requires an account; see 'tweetscore account signup'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.AutoDetect()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("tweetscore", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Score a post and get improvement suggestions")
		fmt.Println("  history   Browse your past analyses")
		fmt.Println("  usage     Show your plan and remaining allowance")
		fmt.Println("  account   Sign up, log in, log out, or show the current user")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", auth.Translate(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/tweetscore/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
}

// setupLogging installs a console zerolog writer; debug level only with
// --verbose.
func setupLogging() {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

// services bundles the shared glue layers a command needs.
type services struct {
	cfg   *config.Config
	db    *store.DB
	auth  *auth.Service
	quota *quota.Service
}

// openServices loads config and opens the database-backed services.
// Callers must Close.
func openServices() (*services, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(config.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ttl := time.Duration(cfg.SessionTTLDays) * 24 * time.Hour
	return &services{
		cfg:   cfg,
		db:    db,
		auth:  auth.New(db, config.SessionPath(), ttl),
		quota: quota.New(db, cfg.FreeDailyLimit),
	}, nil
}

// Close releases the underlying database.
func (s *services) Close() {
	_ = s.db.Close()
}
