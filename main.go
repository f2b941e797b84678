// lecture is a small 2D game: move the circle with arrows/WASD, click to shoot toward the cursor.
//
// Usage:
//
//	lecture [flags]
//
// Flags:
//
//	--config <path>       - YAML config file (or LECTURE_CONFIG)
//	--players <n>         - Number of player instances
//	--retention <kind>    - Bullet retention policy: screen or distance
//	--log-level <level>   - debug, info, warn, error (or LECTURE_LOG_LEVEL)
//	--debug               - Start with per-player debug text (F1 toggles)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lecture/game"
)

var (
	flagConfig    string
	flagPlayers   int
	flagRetention string
	flagLogLevel  string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "lecture",
	Short:        "Move a circle around and shoot at the cursor",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config")
	rootCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players (0 = from config)")
	rootCmd.Flags().StringVar(&flagRetention, "retention", "", "Bullet retention policy: screen or distance (empty = from config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show per-player debug text at startup")
}

func run(cmd *cobra.Command, args []string) error {
	// A missing .env is fine; a broken one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lecture",
	})

	levelName := flagLogLevel
	if env := os.Getenv("LECTURE_LOG_LEVEL"); env != "" && !cmd.Flags().Changed("log-level") {
		levelName = env
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", levelName, err)
	}
	logger.SetLevel(level)

	configPath := flagConfig
	if configPath == "" {
		configPath = os.Getenv("LECTURE_CONFIG")
	}
	config, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if flagPlayers > 0 {
		config.Players = flagPlayers
	}
	if flagRetention != "" {
		config.Retention.Kind = flagRetention
	}
	if flagDebug {
		config.ShowDebug = true
	}

	g, err := game.NewGame(config, game.WithLogger(logger))
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)

	logger.Info("starting", "players", config.Players, "retention", config.Retention.Kind)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game stopped", "err", err)
	}
	return nil
}
