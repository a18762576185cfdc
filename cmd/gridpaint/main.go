package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gridpaint/app"
	"github.com/lixenwraith/gridpaint/audio"
	"github.com/lixenwraith/gridpaint/config"
	"github.com/lixenwraith/gridpaint/core"
	"github.com/lixenwraith/gridpaint/engine"
	"github.com/lixenwraith/gridpaint/grid"
	"github.com/lixenwraith/gridpaint/server"
	"github.com/lixenwraith/gridpaint/status"
)

var (
	envFileFlag   = flag.String("env", ".env", "Optional dotenv file")
	cellWidthFlag = flag.Int("cell-width", 0, "Terminal columns per grid cell")
	paletteFlag   = flag.String("palette", "", "Palette: comma-separated names or name=#rrggbb")
	httpFlag      = flag.String("http", "", "HTTP mirror listen address, empty disables")
	logFileFlag   = flag.String("log", "", "Log file, empty discards logs")
	logLevelFlag  = flag.String("log-level", "", "Log level: debug, info, warn, error")
	noAudioFlag   = flag.Bool("no-audio", false, "Disable paint sounds")
	importFlag    = flag.String("import", "", "Dense JSON grid, or @path to a file, imported at startup")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*envFileFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log, logCloser, err := setupLogging(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	defer logCloser.Close()

	palette, _ := cfg.Palette()
	session := engine.NewSession(palette)
	if cfg.InitialGrid != "" {
		if err := session.ImportText(cfg.InitialGrid); err != nil {
			fmt.Fprintf(os.Stderr, "Initial import rejected: %v\n", err)
			return 2
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.EnablePaste()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
	}
	defer sound.Cleanup()

	metrics := status.NewRegistry()
	opts := app.Options{
		CellWidth: cfg.CellWidth,
		Metrics:   metrics,
		Logger:    log,
	}
	if sound.Active() {
		opts.Sound = sound
	}
	log.WithField("audio", sound.Active()).Debug("sound cues")
	loop := app.NewLoop(session, screen, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		srv := server.New(cfg.HTTPAddr, loop, metrics, log)
		srv.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Warn("http mirror shutdown")
			}
		}()
	}

	if err := loop.Run(ctx); err != nil {
		log.WithError(err).Error("painter exited")
		return 1
	}
	return 0
}

// applyFlags overrides cfg with explicitly set flags only
func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cell-width":
			cfg.CellWidth = *cellWidthFlag
		case "palette":
			cfg.PaletteSpec = *paletteFlag
		case "http":
			cfg.HTTPAddr = *httpFlag
		case "log":
			cfg.LogFile = *logFileFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "no-audio":
			cfg.Audio.Enabled = !*noAudioFlag
		case "import":
			text, readErr := readImportArg(*importFlag)
			if readErr != nil {
				err = readErr
				return
			}
			cfg.InitialGrid = text
		}
	})
	return err
}

func readImportArg(arg string) (string, error) {
	if len(arg) == 0 || arg[0] != '@' {
		return arg, nil
	}
	data, err := os.ReadFile(arg[1:])
	if err != nil {
		return "", fmt.Errorf("import file: %w", err)
	}
	return string(data), nil
}

// setupLogging directs logrus at path, or discards output when path is empty.
// The terminal owns stdout, so logs never go there.
func setupLogging(path, level string) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(lvl)

	if path == "" {
		log.SetOutput(io.Discard)
		return log, io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log.SetOutput(f)
	return log, f, nil
}
