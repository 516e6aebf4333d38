package main

import (
	"fmt"
	"os"

	"eventdemo/internal/app"
)

func main() {
	application, err := app.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "eventdemo: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "eventdemo: %v\n", err)
		os.Exit(1)
	}
}
