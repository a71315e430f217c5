package main

import (
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soundctl/oscd/internal/config"
	"github.com/soundctl/oscd/internal/handlers"
	"github.com/soundctl/oscd/internal/logging"
	"github.com/soundctl/oscd/osc"
)

var (
	serveConfigPath string
	serveListenAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the OSC server",
	Long: `Serve binds a UDP socket and answers OSC messages with the built-in
handler set (/ping, /echo, /info, /math/add, /audio/volume, /midi/note,
/control/param, /system/shutdown). It runs until interrupted or until a
/system/shutdown message arrives.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to TOML config file")
	serveCmd.Flags().StringVarP(&serveListenAddr, "listen", "l", "", "UDP listen address (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfigPath != "" {
		var err error
		cfg, err = config.Load(serveConfigPath)
		if err != nil {
			return err
		}
	}
	if serveListenAddr != "" {
		cfg.ListenAddr = serveListenAddr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.LogPath != "" {
		if err := logging.Init(cfg.LogPath); err != nil {
			return err
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logging.SetLevel(level)
	log := logging.L()

	reg := osc.NewRegistry()
	reg.SetLogger(log)

	stopCh := make(chan struct{})
	var stopOnce sync.Once
	stop := func() { stopOnce.Do(func() { close(stopCh) }) }

	handlers.Register(reg, handlers.NewState(), handlers.Options{
		ServerName: cfg.ServerName,
		Version:    version,
		Stop:       stop,
		Logger:     log,
	})

	server := &osc.Server{
		Addr:        cfg.ListenAddr,
		Registry:    reg,
		ReadTimeout: cfg.ReadTimeout,
		Logger:      log,
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.ListenAddr, "name", cfg.ServerName)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("signal received, shutting down")
	case <-stopCh:
		log.Info("shutting down")
	}

	if err := server.Close(); err != nil {
		return err
	}
	return <-errCh
}
