package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"

	"github.com/ironsheep/huescore/internal/batch"
	"github.com/ironsheep/huescore/internal/config"
	"github.com/ironsheep/huescore/internal/scorer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("huescore %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("huescore - score a folder of images by the colored pixels in their center")
			fmt.Println()
			fmt.Println("Usage: huescore [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  HUESCORE_FOLDER=hue                 Folder with .jpg/.png images")
			fmt.Println("  HUESCORE_REPORT=scores.txt          Report file (overwritten)")
			fmt.Println("  HUESCORE_WORKERS=<cpus>             Images processed in parallel")
			fmt.Println("  HUESCORE_UNIFORM_SCORE=0            Score used when all images tie")
			fmt.Println("  HUESCORE_PREVIEW_DIR=               Write search-region previews here")
			fmt.Println("  HUESCORE_DUPLICATE_DISTANCE=-1      Warn about near-identical images (>= 0)")
			fmt.Println("  HUESCORE_LOG_LEVEL=debug            Enable debug logging")
			fmt.Println()
			fmt.Println("The hue range and search radius are asked for interactively.")
			return
		}
	}

	// Configure logging to stderr (stdout is for prompts and results)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.Debug() {
		log.Printf("huescore v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Config: %+v", *cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := scorer.New(cfg, os.Stdin, os.Stdout, scorer.WithProgress(newProgressBar))
	if err := s.Run(ctx); err != nil {
		if errors.Is(err, batch.ErrNoImages) {
			os.Exit(1)
		}
		log.Fatalf("Scoring failed: %v", err)
	}
}

// newProgressBar renders phase progress on stderr.
func newProgressBar(total int, description string) batch.Progress {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("image"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
