package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mainstack/revenue/cmd/export"
	"mainstack/revenue/cmd/filter"
	"mainstack/revenue/cmd/revenue"
	"mainstack/revenue/cmd/root"
	"mainstack/revenue/cmd/tui"
)

func init() {
	// 1. Initialize root command flags
	root.Init()

	// 2. The revenue page is the default action
	revenue.Register(root.Cmd)

	// 3. Add all subcommands
	root.Cmd.AddCommand(filter.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(tui.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
