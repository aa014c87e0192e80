// Command starbuzz prints a few beverage, component and discount chains.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, settings.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if settings.NoColor {
		color.NoColor = true
	}

	logger.Debug().
		Str("currency", settings.Currency).
		Int("precision", settings.Precision).
		Msg("settings loaded")

	if err := run(os.Stdout, settings, logger); err != nil {
		logger.Fatal().Err(err).Msg("demo failed")
	}
}
