package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/tabletennis/audio"
	"github.com/lixenwraith/tabletennis/config"
	"github.com/lixenwraith/tabletennis/core"
	"github.com/lixenwraith/tabletennis/engine"
	"github.com/lixenwraith/tabletennis/game"
	"github.com/lixenwraith/tabletennis/input"
	"github.com/lixenwraith/tabletennis/network"
	"github.com/lixenwraith/tabletennis/render"
	"github.com/lixenwraith/tabletennis/render/renderers"
	"github.com/lixenwraith/tabletennis/service"
	"github.com/lixenwraith/tabletennis/status"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write JSON logs and show the stats panel")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 seeds from the clock")
	spectateFlag = flag.String("spectate", "", "Serve the spectator websocket on this address")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logger, logFile := setupLogging(cfg.Log.Debug, cfg.Log.Path)
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	core.RegisterTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	if err := run(cfg, screen, logger); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config) {
	if *debugFlag {
		cfg.Log.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *spectateFlag != "" {
		cfg.Spectate.Enabled = true
		cfg.Spectate.Address = *spectateFlag
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}
}

// spectateConfig converts the [spectate] section, a disabled section yields no address
func spectateConfig(cfg *config.Config) *network.Config {
	nc := network.DefaultConfig()
	if cfg.Spectate.Enabled {
		nc.Address = cfg.Spectate.Address
	}
	nc.SendInterval = cfg.SendInterval()
	return nc
}

func run(cfg *config.Config, screen tcell.Screen, logger *zap.Logger) error {
	reg := status.NewRegistry()

	opts := cfg.MatchOptions()
	opts.Logger = logger
	opts.Registry = reg
	match := game.NewMatch(opts)
	logger.Info("match created", zap.Uint64("seed", cfg.Game.Seed), zap.Int("win_score", cfg.Game.WinScore))

	hub := service.NewHub(logger)
	audioSvc := audio.NewService(cfg.AudioConfig(), logger)
	spectateSvc := network.NewService(match, logger, reg)
	if err := hub.Register(audioSvc, !cfg.Audio.Enabled); err != nil {
		return fmt.Errorf("register audio: %w", err)
	}
	if err := hub.Register(spectateSvc, spectateConfig(cfg)); err != nil {
		return fmt.Errorf("register spectator: %w", err)
	}
	if err := hub.InitAll(); err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	if err := hub.StartAll(); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	defer hub.StopAll()

	if p := audioSvc.Player(); p != nil {
		match.Router().Register(audio.NewEventHandler[*game.Match](p))
	}

	orch := render.NewOrchestrator(screen)
	renderers.RegisterDefaults(orch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	h := &host{
		match:     match,
		orch:      orch,
		clock:     clock,
		keys:      input.DefaultKeyTable(),
		hold:      input.NewHoldTracker(0),
		events:    make(chan tcell.Event, 256),
		audio:     audioSvc.Engine(),
		spectate:  spectateSvc,
		reg:       reg,
		log:       logger.Named("host"),
		quit:      cancel,
		showStats: cfg.Log.Debug,
		now:       time.Now,
	}

	// Input polling feeds the loop goroutine; terminal closure ends the game
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				cancel()
				return
			}
			select {
			case h.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	loop := engine.NewLoop(clock, cfg.TickInterval(), h)
	loop.SetPanicHandler(core.HandleCrash)
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("loop: %w", err)
	}

	logger.Info("exiting",
		zap.Uint64("frames", loop.Frames()),
		zap.Int("player", match.State().PlayerScore),
		zap.Int("computer", match.State().ComputerScore))
	return nil
}
