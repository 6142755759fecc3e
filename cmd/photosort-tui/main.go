package main

import (
	"flag"
	"fmt"
	"os"

	"photosort/internal/config"
	"photosort/internal/exif"
	"photosort/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to settings JSON file")
	credsFlag := flag.String("creds", "creds.yaml", "Path to credentials YAML file")
	verboseFlag := flag.Bool("verbose", false, "Show verbose output")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	creds, err := config.LoadCredentials(*credsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading credentials: %v\n", err)
		os.Exit(1)
	}

	tool, err := exif.NewTool()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer tool.Close()

	if err := tui.Run(settings, creds.AccessToken, tool, *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
