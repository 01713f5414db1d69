package main

import (
	"context"
	"fmt"
	"os"

	"github.com/taskloop/taskloop-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
