package main

import (
	"fmt"
	"os"

	"github.com/EyalShefer/ai-lms-system-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
