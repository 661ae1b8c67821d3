// Command boardctl works with classboard project files offline.
package main

import (
	"os"

	"github.com/mmynk/classboard/pkg/logging"
)

func main() {
	logging.Setup()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
