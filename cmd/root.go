package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/elxecutor/gemini/internal/app"
	"github.com/elxecutor/gemini/internal/config"
)

var (
	apiKeyFlag      string
	resetConfigFlag bool
	demoFlag        bool
)

var rootCmd = &cobra.Command{
	Use:   "gemini-chat",
	Short: "An animated terminal chat client for Google's Gemini",
	Long: `gemini-chat is a terminal chat client for Google's Gemini API with
styled message bubbles, an animated title bar and a demo mode.`,
	Run: func(cmd *cobra.Command, args []string) {
		if demoFlag {
			runApp(config.Default(), true)
			return
		}

		cfg := loadOrInitConfig()
		runApp(cfg, false)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	rootCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "set the API key (persisted for future runs)")
	rootCmd.Flags().BoolVar(&resetConfigFlag, "reset-config", false, "clear the stored config and prompt for a key again")
	rootCmd.Flags().BoolVar(&demoFlag, "demo", false, "run with a canned conversation and no network calls")

	rootCmd.AddCommand(keyCmd)
}

// loadOrInitConfig resolves the startup config: flags first, then the
// environment, then the stored file, finally an interactive prompt.
// Config IO failures are fatal here; API failures later are not.
func loadOrInitConfig() *config.Config {
	if resetConfigFlag {
		if err := config.Reset(); err != nil {
			log.Fatalf("Failed to reset config: %v", err)
		}
	}

	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotFound) {
		cfg = config.Default()
	} else if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if apiKeyFlag != "" {
		if err := cfg.SetAPIKey(apiKeyFlag); err != nil {
			log.Fatalf("Failed to save API key: %v", err)
		}
	}

	// Environment key applies to this session without being persisted.
	if !cfg.HasAPIKey() {
		if envKey := os.Getenv("GEMINI_API_KEY"); envKey != "" {
			cfg.APIKey = envKey
		}
	}

	if !cfg.HasAPIKey() {
		key, err := promptForAPIKey()
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		if err := cfg.SetAPIKey(key); err != nil {
			log.Fatalf("Failed to save API key: %v", err)
		}
		fmt.Println("API key saved! Starting the chat...")
	}

	return cfg
}

func promptForAPIKey() (string, error) {
	fmt.Println("Welcome to Gemini Chat!")
	fmt.Println()
	fmt.Println("To get started, you need a Gemini API key:")
	fmt.Println("1. Go to https://aistudio.google.com/app/apikey")
	fmt.Println("2. Create a new API key")
	fmt.Println("3. Paste it below")
	fmt.Println()

	prompt := promptui.Prompt{
		Label: "Gemini API key",
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("API key cannot be empty")
			}
			return nil
		},
	}
	return prompt.Run()
}

func runApp(cfg *config.Config, demo bool) {
	application := app.NewApplication(cfg, demo)
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
