package main

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/DaanHessen/encounter-tui/internal/engine"
	"github.com/DaanHessen/encounter-tui/internal/text"
	"github.com/DaanHessen/encounter-tui/internal/ui"
	"github.com/DaanHessen/encounter-tui/internal/util"
)

var (
	version      = "0.1.0"
	seedAlphabet = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)
)

const reportWidth = 100

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("encounter: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := util.LoadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("encounter", flag.ContinueOnError)
	fs.StringVar(&cfg.SeedText, "seed", cfg.SeedText, "Run seed string (optional; random if omitted)")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "Number of draws to simulate for the summary")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML catalog and weights (default: built-in table)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text|markdown|styled")
	fs.BoolVar(&cfg.Interactive, "tui", cfg.Interactive, "Start the interactive terminal UI")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "TUI colour theme")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "encounter [--seed seedstring] [--rounds N] [--catalog file.yaml] [--format=text|markdown|styled] [--tui] | catalog | version\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rest := fs.Args()
	command := ""
	if len(rest) > 0 {
		command = rest[0]
	}
	if command == "version" {
		fmt.Fprintln(out, "encounter", version)
		return nil
	}

	drawer, err := loadDrawer(cfg.CatalogPath)
	if err != nil {
		return err
	}
	renderer, err := text.ForFormat(cfg.Format, reportWidth)
	if err != nil {
		return err
	}

	switch command {
	case "":
	case "catalog":
		listing, err := renderer.Catalog(drawer)
		if err != nil {
			return err
		}
		fmt.Fprint(out, listing)
		return nil
	default:
		fs.Usage()
		return errors.Errorf("unknown command %q", command)
	}

	if cfg.Rounds < 0 {
		return errors.Wrapf(engine.ErrInvalidArgument, "rounds must be >= 0, got %d", cfg.Rounds)
	}

	if cfg.SeedText == "" {
		generated, err := generateSeed()
		if err != nil {
			return errors.Wrap(err, "generate seed")
		}
		cfg.SeedText = generated
		fmt.Fprintf(out, "New run seed: %s\n", cfg.SeedText)
	}
	seed, err := engine.NewRunSeed(cfg.SeedText)
	if err != nil {
		return err
	}
	runID := uuid.New()
	log.Printf("run %s seed=%q rounds=%d catalog=%q", runID, seed.Text, cfg.Rounds, catalogName(cfg.CatalogPath))

	if cfg.Interactive {
		return ui.Run(ctx, drawer, seed, cfg)
	}
	return report(out, drawer, renderer, seed, cfg.Rounds)
}

// report prints one encounter card followed by the summary of a fresh batch of draws.
func report(out io.Writer, drawer *engine.Drawer, renderer text.Renderer, seed engine.RunSeed, rounds int) error {
	res, err := drawer.SimulateEncounter(seed.Stream("single"))
	if err != nil {
		return err
	}
	card, err := renderer.Encounter(res, drawer.Catalog())
	if err != nil {
		return err
	}
	fmt.Fprint(out, card)

	sum, err := drawer.SimulateMultipleDraws(seed.Stream("draws"), rounds)
	if err != nil {
		return err
	}
	summary, err := renderer.Summary(sum, drawer.Probabilities())
	if err != nil {
		return err
	}
	fmt.Fprint(out, summary)
	return nil
}

func loadDrawer(path string) (*engine.Drawer, error) {
	if strings.TrimSpace(path) == "" {
		return engine.DefaultDrawer()
	}
	return engine.LoadDrawerFile(path)
}

func catalogName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func generateSeed() (string, error) {
	buf := make([]byte, 15) // 24 characters base32
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToLower(seedAlphabet.EncodeToString(buf)), nil
}
