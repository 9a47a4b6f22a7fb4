package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/battleship-board/internal"
	"github.com/rocketscienceinc/battleship-board/internal/config"
)

// main - loads config.yml, builds the JSON logger and plays a single bot-vs-bot
// battleship match. The match is seeded from setup.seed (or the clock when it is 0)
// and its summary goes to redis when redis.enabled is set.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initConfig reads config.yml from the working directory; cleanenv fills the gaps from env.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initLogger maps log-level to a slog level. Debug also prints the rendered boards.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
