// geowars is a Geometry Wars style shooter for the terminal and the desktop,
// with an AI observer commenting on your run.
//
// Usage:
//
//	geowars                 - Play in the terminal
//	geowars play            - Play in the terminal
//	geowars window          - Play in a desktop window
//	geowars menu            - Start menu with high scores
//	geowars scores          - Show high scores
//	geowars serve           - Start SSH server for remote play
//	geowars config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.geowars/scores.db)
//	--config <path>       - Use a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--no-ai               - Disable the observer
//	--sound               - Enable sound effects
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geowars/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagNoAI       bool
	flagSound      bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geowars",
	Short: "Geometry Wars - a twin-stick shooter with an AI observer",
	Long: `Geometry Wars is a twin-stick arena shooter. Enemies home in on your ship;
shoot them down before they reach you. An AI observer (Google Gemini)
comments on your run when GEMINI_API_KEY is set.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  menu     - Start menu with high scores
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  geowars
  geowars window --sound
  geowars play --difficulty hard --seed 42
  geowars serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagNoAI, "no-ai", false, "Disable the AI observer")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound effects")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
