package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"
	"time"

	"autoad/internal/config"
	"autoad/internal/formatter"
	"autoad/internal/scraper"
	_ "autoad/internal/sites/autoru"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var version = "dev"

var urlPattern = regexp.MustCompile(`^https?://.*auto\.ru.*$`)

var (
	outputFormat       string
	outputFile         string
	timeout            time.Duration
	site               string
	showUI             bool
	proxyURL           string
	challengeSettle    time.Duration
	maxChallengePasses int
	logLevel           string
)

func main() {
	cfg := config.Load()

	var rootCmd = &cobra.Command{
		Use:     "autoad [URL]",
		Short:   "Extract mark, model, mileage and price from an auto.ru ad",
		Version: version,
		Long: `autoad opens an auto.ru classified-ad page in Chrome, clicks through the
bot-protection screens and prints the vehicle mark, model, mileage and price.`,
		Example: `  # Print the ad details
  autoad https://auto.ru/cars/used/sale/toyota/camry/1125000000-abcdef/

  # Watch the browser while it passes the challenge screens
  autoad --showui https://auto.ru/motorcycle/used/sale/honda/cb_400/1120000000-abcdef/

  # Give up after 10 challenge passes and save JSON
  autoad --max-challenge-passes 10 -o ad.json https://auto.ru/cars/new/sale/kia/rio/1125000001-abcdef/`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				os.Exit(0)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(logLevel, cfg.Log.Format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], cfg)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, json, markdown, html, csv, table)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (format inferred from extension if -f not specified)")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", cfg.Browser.NavigationTimeout, "Page navigation timeout")
	rootCmd.Flags().StringVar(&site, "site", "autoru", "Site scraper to use")
	rootCmd.Flags().BoolVar(&showUI, "showui", !cfg.Browser.Headless, "Show browser UI (disable headless mode)")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", cfg.Browser.Proxy, "Proxy URL (e.g. http://127.0.0.1:7890), defaults to AUTOAD_PROXY env var")
	rootCmd.Flags().DurationVar(&challengeSettle, "challenge-settle", cfg.Challenge.Settle, "Pause after dismissing a challenge screen")
	rootCmd.Flags().IntVar(&maxChallengePasses, "max-challenge-passes", cfg.Challenge.MaxPasses, "Give up after this many challenge passes (0 for no limit)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")

	// Interrupting cancels the challenge pauses and still closes the browser.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, target string, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if outputFile != "" && outputFormat == "text" {
		if inferred := inferFormatFromExtension(outputFile); inferred != "" {
			outputFormat = inferred
		}
	}

	if err := validateURL(target); err != nil {
		return err
	}
	if err := validateFlags(); err != nil {
		return err
	}

	s, ok := scraper.Get(site)
	if !ok {
		return fmt.Errorf("unknown site: %s (available: %s)", site, strings.Join(scraper.Names(), ", "))
	}

	opts := scraper.Options{
		Timeout:            timeout,
		ShowUI:             showUI,
		ProxyURL:           proxyURL,
		BrowserBin:         cfg.Browser.Bin,
		NoSandbox:          cfg.Browser.NoSandbox,
		ChallengeSettle:    challengeSettle,
		MaxChallengePasses: maxChallengePasses,
	}

	content, err := s.Scrape(ctx, target, opts)
	if err != nil {
		return fmt.Errorf("failed to scrape: %w", err)
	}

	out, err := formatter.Format(content, outputFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write to file: %w", err)
		}
		slog.Info("output written", "path", outputFile)
		return nil
	}

	fmt.Print(out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Println()
	}
	return nil
}

func validateURL(target string) error {
	if !urlPattern.MatchString(target) {
		return fmt.Errorf("invalid URL format: please provide a valid URL containing 'auto.ru'")
	}
	return nil
}

func validateFlags() error {
	validFormats := map[string]bool{
		"html":     true,
		"text":     true,
		"markdown": true,
		"json":     true,
		"csv":      true,
		"table":    true,
	}
	if !validFormats[outputFormat] {
		return fmt.Errorf("invalid output format: %s", outputFormat)
	}

	if maxChallengePasses < 0 {
		return fmt.Errorf("--max-challenge-passes must not be negative")
	}

	return nil
}

// inferFormatFromExtension infers output format from file extension
func inferFormatFromExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return "markdown"
	case ".json":
		return "json"
	case ".html", ".htm":
		return "html"
	case ".txt":
		return "text"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}

func initLogger(level, format string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	// stdout carries the listing, so logs go to stderr.
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			TimeFormat: time.Kitchen,
		})
	}
	slog.SetDefault(slog.New(handler))
}
