package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/quiver-to-markdown/internal"
	pkgconfig "github.com/starford/quiver-to-markdown/pkg/config"
)

const usage = "USAGE: quiver-to-markdown ~/path/to/Quiver.qvlibrary ~/output/folder"

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(os.Getenv("APP_CONFIG_FILE"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if root := os.Getenv("WATCHMAN_ROOT"); root != "" {
		cfg.Source.Root = root
	} else if arg := cmd.Args().Get(0); arg != "" {
		cfg.Source.Root = arg
	}
	if cfg.Source.Root == "" {
		fmt.Fprintln(cmd.Root().Writer, usage)
		return nil
	}
	if base := cmd.Args().Get(1); base != "" {
		cfg.Output.Base = base
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "quiver-to-markdown",
		Usage:     "Convert a Quiver library into Markdown notes with YAML frontmatter",
		ArgsUsage: "<library> [output-base]",
		Action:    run,
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
