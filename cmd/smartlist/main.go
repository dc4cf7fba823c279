// cmd/smartlist/main.go
package main

import (
	"os"
	"time"

	"smartlist/internal/demo"
)

func main() {
	demo.Run(os.Stdout, demo.Config{
		Dir:            ".",
		RandomElements: 99,
		SleepUnit:      100 * time.Millisecond,
	})
	os.Exit(0)
}
