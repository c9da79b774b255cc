package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"promptforge/internal/config"
	"promptforge/internal/enhance"
	"promptforge/internal/enrich"
	"promptforge/internal/logging"
	"promptforge/internal/types"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// enhance flags
	useRemote   bool
	structured  bool
	contextPath string
	timeout     time.Duration

	cfg *config.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "promptforge - prompt enhancement for code-generation assistants",
	Long: `promptforge turns short, vague prompts into longer, structured,
domain-aware ones suitable for a downstream code-generation assistant.

Local correction (typos, grammar, whitespace) always runs; remote
enrichment via the Gemini API is attempted when an API key is configured
and degrades gracefully to the local result on any failure.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Best-effort .env loading; absence is fine.
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		if err := logging.Initialize(level, cfg.Logging.File); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.BootDebug("config loaded from %s, remote_enabled=%v", cfgPath, cfg.Remote.Enabled)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

// enhanceCmd runs one enhancement over the prompt given as arguments or
// on stdin.
var enhanceCmd = &cobra.Command{
	Use:   "enhance [prompt...]",
	Short: "Enhance a prompt and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readPrompt(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		conv, err := loadConversationContext(contextPath)
		if err != nil {
			return err
		}

		// A typed nil pointer would satisfy the Enricher interface, so
		// only hand over a client that actually exists.
		var client enhance.Enricher
		if c := buildClient(); c != nil {
			client = c
		}
		enhancer := enhance.New(client)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		if structured {
			text, _, err := enhancer.Structure(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}

		remote := useRemote && cfg.Remote.Enabled
		result, err := enhancer.Improve(ctx, raw, conv, remote)
		if err != nil {
			return err
		}

		if remote && result.Source == enhance.SourceLocal {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: remote enrichment unavailable, returning locally corrected text")
		}
		if !result.Changed {
			fmt.Fprintln(cmd.ErrOrStderr(), "note: prompt was already clean, returned unchanged")
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	},
}

// configCmd writes the current effective configuration to a file, giving
// users a starting point to edit.
var configCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Save(cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgPath)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.Name, cfg.Version)
	},
}

// buildClient constructs the enrichment client from config. Returns nil
// when no API key is available; the enhancer treats that as local-only.
func buildClient() *enrich.Client {
	if strings.TrimSpace(cfg.Remote.APIKey) == "" {
		return nil
	}

	clientTimeout, err := time.ParseDuration(cfg.Remote.Timeout)
	if err != nil {
		clientTimeout = 0 // client falls back to its default
	}

	return enrich.NewClientWithConfig(enrich.Config{
		APIKey:          cfg.Remote.APIKey,
		BaseURL:         cfg.Remote.BaseURL,
		Model:           cfg.Remote.Model,
		Timeout:         clientTimeout,
		Temperature:     cfg.Remote.Temperature,
		TopK:            cfg.Remote.TopK,
		TopP:            cfg.Remote.TopP,
		MaxOutputTokens: cfg.Remote.MaxOutputTokens,
	})
}

// readPrompt joins args, or reads stdin when no args were given.
func readPrompt(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read prompt from stdin: %w", err)
	}
	return string(data), nil
}

// loadConversationContext reads an optional YAML context file produced by
// the hosting tool. The core never derives context itself.
func loadConversationContext(path string) (*types.ConversationContext, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}
	var conv types.ConversationContext
	if err := yaml.Unmarshal(data, &conv); err != nil {
		return nil, fmt.Errorf("failed to parse context file: %w", err)
	}
	return &conv, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "promptforge.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	enhanceCmd.Flags().BoolVar(&useRemote, "remote", true, "attempt remote enrichment (falls back to local)")
	enhanceCmd.Flags().BoolVar(&structured, "structured", false, "emit the labeled multi-section form (local only)")
	enhanceCmd.Flags().StringVar(&contextPath, "context", "", "YAML file with conversation context")
	enhanceCmd.Flags().DurationVar(&timeout, "timeout", 0, "overall deadline for the enhancement call")

	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
