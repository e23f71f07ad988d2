package main

import (
	"context"
	"errors"
	"os"

	"github.com/SscSPs/bizledger/internal/commands"
)

func main() {
	err := commands.NewRootCommand(commands.DefaultDeps()).ExecuteContext(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, commands.ErrBooksUnhealthy):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
