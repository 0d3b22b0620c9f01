package main

import (
	"context"

	"github.com/faizmokh/pushups/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
