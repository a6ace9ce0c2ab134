package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/qnkhuat/stackerterm/pkg/config"
	"github.com/qnkhuat/stackerterm/pkg/game"
	"github.com/qnkhuat/stackerterm/pkg/logger"
	"go.uber.org/zap"
)

var (
	done = make(chan bool)

	activeGame *game.Game

	configPath   string
	playerFlag   string
	logPath      string
	debugAddress string
	logDebug     bool
	writeConfig  bool

	columnsFlag int
	rowsFlag    int
	widthFlag   int
)

func init() {
	log.SetFlags(0)
}

// applyFlags overrides the loaded configuration with the flags given on the
// command line.
func applyFlags(c *config.Config) {
	if playerFlag != "" {
		c.Player = playerFlag
	}
	if logPath != "" {
		c.Log.Path = logPath
	}
	if logDebug {
		c.Log.Level = "debug"
	}
	if columnsFlag > 0 {
		c.Game.Columns = columnsFlag
	}
	if rowsFlag > 0 {
		c.Game.Rows = rowsFlag
	}
	if widthFlag > 0 {
		c.Game.StartingWidth = widthFlag
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			closeGUI()
			time.Sleep(time.Second)

			log.Println()
			debug.PrintStack()

			log.Println()
			log.Fatalf("panic: %+v", r)
		}
	}()

	flag.StringVar(&configPath, "config", "", "path to configuration file")
	flag.StringVar(&playerFlag, "player", "", "player name")
	flag.StringVar(&logPath, "log", "", "write logs to file")
	flag.StringVar(&debugAddress, "debug-address", "", "address to serve debug info")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
	flag.BoolVar(&writeConfig, "write-config", false, "write the configuration to the config path and exit")
	flag.IntVar(&columnsFlag, "columns", 0, "board columns")
	flag.IntVar(&rowsFlag, "rows", 0, "board rows")
	flag.IntVar(&widthFlag, "width", 0, "starting block width")
	flag.Parse()

	explicit := configPath != ""
	if !explicit {
		configPath = config.DefaultPath()
	}

	cfg, err := config.Load(configPath, explicit)
	if err != nil {
		log.Fatal(err)
	}

	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %s", err)
	}

	theme, err = findTheme(cfg.Theme, cfg.Themes)
	if err != nil {
		log.Fatalf("failed to load theme: %s", err)
	}

	if writeConfig {
		cfg.Themes = saveTheme(cfg.Themes, theme)

		if configPath == "" {
			log.Fatal("failed to write config: no configuration path")
		}
		if err := cfg.Write(configPath); err != nil {
			log.Fatalf("failed to write config: %s", err)
		}
		log.Printf("wrote %s", configPath)
		return
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !tty {
		log.Fatal("failed to start stackerterm: non-interactive terminals are not supported")
	}

	keybindings, err = parseKeybindings(cfg.Keys)
	if err != nil {
		log.Fatalf("failed to parse keybindings: %s", err)
	}
	restartKey = cfg.Keys.Restart[0]

	zlog, err := logger.NewFile(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %s", err)
	}
	defer zlog.Sync()

	if debugAddress != "" {
		go func() {
			log.Fatal(http.ListenAndServe(debugAddress, nil))
		}()
	}

	activeGame, err = game.NewGame(cfg.Game, cfg.Player, draw, events, zlog)
	if err != nil {
		log.Fatal(err)
	}

	app, err = initGUI()
	if err != nil {
		log.Fatalf("failed to initialize GUI: %s", err)
	}

	go handleDraw()
	go handleEvents()

	go func() {
		if err := app.Run(); err != nil {
			log.Fatalf("failed to run application: %s", err)
		}

		done <- true
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	ctx, cancel := context.WithCancel(context.Background())
	activeGame.Start(ctx)

	logMessage(fmt.Sprintf("Press %s to drop, %s to restart", strings.Join(cfg.Keys.Drop, " or "), restartKey))

	<-done

	cancel()
	activeGame.Stop()

	stats := activeGame.Stats()
	zlog.Info("exiting",
		zap.Int("played", stats.Played),
		zap.Int("won", stats.Won),
		zap.Int("best", stats.Best))

	closeGUI()
}
