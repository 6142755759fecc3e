package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"photosort/internal/config"
	"photosort/internal/download"
	"photosort/internal/exif"
	"photosort/internal/photos"
)

var (
	configPath  string
	credsPath   string
	outputDir   string
	cutoffDate  string
	concurrency int
	verbose     bool
	dryRun      bool
)

var rootCmd = &cobra.Command{
	Use:   "photosort",
	Short: "Download a photo library organized into album folders",
	Long: `Download every item from your photo library, resolve which album
each one belongs to, and write it under a folder named after that
album with corrected capture-time metadata and a timestamp-derived
filename.

For interactive mode, use: photosort-tui`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Download, label, and organize the library",
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a settings file with default values",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "settings.json"
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.DefaultSettings().Save(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default settings to %s\n", path)
	},
}

var albumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "List albums in canonical order",
	Run: func(cmd *cobra.Command, args []string) {
		if err := listAlbums(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to settings JSON file")
	rootCmd.PersistentFlags().StringVarP(&credsPath, "creds", "c", "creds.yaml", "Path to credentials YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")

	runCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	runCmd.Flags().StringVar(&cutoffDate, "cutoff", "", "Skip items captured before this date, YYYY-MM-DD (overrides config)")
	runCmd.Flags().IntVar(&concurrency, "concurrency", 0, "Max concurrent downloads (overrides config)")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve labels without downloading")

	rootCmd.AddCommand(runCmd, albumsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if outputDir != "" {
		settings.DownloadsPath = outputDir
	}
	if cutoffDate != "" {
		settings.CutoffDate = cutoffDate
	}
	if concurrency > 0 {
		settings.MaxConcurrentDownloads = concurrency
	}
	return settings, nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

func printProgress(event download.ProgressEvent) {
	if event.Level == download.LevelVerbose && !verbose {
		return
	}

	prefix := "   "
	switch event.Level {
	case download.LevelError:
		prefix = "[error] "
	case download.LevelWarning:
		prefix = "[warn]  "
	case download.LevelSuccess:
		prefix = "[ok]    "
	case download.LevelInfo:
		prefix = "[info]  "
	}

	fmt.Println(prefix + event.Message)
}

func run() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	creds, err := config.LoadCredentials(credsPath)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	var editor download.MetadataEditor
	if !dryRun {
		tool, err := exif.NewTool()
		if err != nil {
			return err
		}
		defer tool.Close()
		editor = tool
	}

	manager, err := download.NewManager(settings, creds.AccessToken, editor, printProgress)
	if err != nil {
		return err
	}

	if err := manager.Initialize(ctx); err != nil {
		return err
	}

	if dryRun {
		fmt.Println("\n[Dry run - not downloading]")
		counts := manager.LabelCounts()
		labels := make([]string, 0, len(counts))
		for label := range counts {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("  %-40s %d item(s)\n", label, counts[label])
		}
		return nil
	}

	fmt.Println("\nStarting downloads...")
	fmt.Println()

	if err := manager.Start(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		return fmt.Errorf("download: %w", err)
	}

	fmt.Println()
	fmt.Print(manager.Summary().Render())
	return nil
}

func listAlbums() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	creds, err := config.LoadCredentials(credsPath)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	session := photos.NewSession(photos.Config{
		AccessToken:   creds.AccessToken,
		BaseURL:       settings.APIBaseURL,
		AlbumPageSize: settings.AlbumPageSize,
	})

	albums, err := session.ListAlbums(ctx)
	if err != nil {
		return err
	}

	for i, album := range albums {
		fmt.Printf("%3d. %s (%s)\n", i+1, album.Title, album.ID)
	}
	return nil
}
