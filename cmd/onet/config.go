package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the configuration a game would start with, after the search
order and the difficulty preset are applied. The output is valid YAML and
can be saved as a starting point for --config.

Search order:
  --config path -> ~/.arcade/configs/onet.yaml -> ./configs/onet.yaml -> built-in defaults

Examples:
  onet config
  onet config --difficulty hard > my-onet.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, src, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", src)
	if flagDifficulty != "" {
		fmt.Printf("# difficulty: %s\n", flagDifficulty)
	}
	os.Stdout.Write(data)
}
