package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zclaim/internal/claim"
	"github.com/zarlcorp/zclaim/internal/cli"
	"github.com/zarlcorp/zclaim/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zclaim"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		err := runCLI(ctx, os.Args[1], os.Args[2:])
		_ = app.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "zclaim: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(ctx); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "version":
		fmt.Printf("zclaim %s\n", version)
		return nil
	case "mask":
		return cli.CmdMask(os.Stdout, args)
	case "date":
		return cli.CmdDate(os.Stdout, args)
	case "pages":
		return cli.CmdPages(os.Stdout, args)
	case "sample":
		return cli.CmdSample(os.Stdout, args)
	case "list":
		return cli.CmdList(os.Stdout, args)
	case "withdraw":
		if len(args) < 1 {
			return fmt.Errorf("usage: zclaim withdraw <id>")
		}
		return cli.CmdWithdraw(ctx, os.Stdout, args[0])
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runTUI(ctx context.Context) error {
	dataDir := cli.DataDir()
	gen := claim.New()
	firstRun := cli.IsFirstRun(dataDir)

	m := tui.New(version, dataDir, gen, firstRun)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
