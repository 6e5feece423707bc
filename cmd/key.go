package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/elxecutor/gemini/internal/config"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored API key",
}

var setKeyCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Store an API key",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadOrDefault()

		var key string
		var err error
		if len(args) > 0 {
			key = args[0]
		} else {
			key, err = promptForAPIKey()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if err := cfg.SetAPIKey(key); err != nil {
			log.Fatalf("Failed to save API key: %v", err)
		}
		fmt.Println("API key saved")
	},
}

var showKeyCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether an API key is stored",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadOrDefault()

		path, err := config.Path()
		if err != nil {
			log.Fatalf("Failed to get config path: %v", err)
		}

		fmt.Printf("Config file: %s\n", path)
		if cfg.HasAPIKey() {
			fmt.Println("API key: set (hidden for security)")
		} else {
			fmt.Println("API key: not set")
		}
	},
}

var clearKeyCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadOrDefault()

		if err := cfg.SetAPIKey(""); err != nil {
			log.Fatalf("Failed to clear API key: %v", err)
		}
		fmt.Println("API key cleared")
	},
}

func loadOrDefault() *config.Config {
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotFound) {
		return config.Default()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func init() {
	keyCmd.AddCommand(setKeyCmd)
	keyCmd.AddCommand(showKeyCmd)
	keyCmd.AddCommand(clearKeyCmd)
}
