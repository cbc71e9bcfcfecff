package main

import (
	"fmt"
	"os"

	"cpu-scheduler-simulator/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
