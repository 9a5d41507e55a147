package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/httpapi"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagHTTPAddr    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game; the SSH user name is recorded
with the score. All users share one leaderboard. With --http, a
read-only JSON scoreboard is served as well.

When the settings came from a config file, edits to that file apply to
sessions started afterwards.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                      # Listen on :23234
  snake serve --ssh :2222          # Listen on port 2222
  snake serve --http :8080         # Also serve /api/scores

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle time before disconnecting (default from config, 30m)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP scoreboard address (disabled when empty)")
}

// applyServeFlags overrides the server section with command-line flags.
func applyServeFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.SSHAddr = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}
	if flags.Changed("http") {
		cfg.Server.HTTPAddr = flagHTTPAddr
	}
	return cfg
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cfg = applyServeFlags(cmd, cfg)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})

	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var current atomic.Pointer[config.Config]
	current.Store(&cfg)

	if cfg.Source != "" {
		err := config.Watch(ctx, cfg.Source, func(next config.Config) {
			next, err := applyFlags(cmd, applyServeFlags(cmd, next))
			if err != nil {
				logger.Warn("ignoring reloaded config", "error", err)
				return
			}
			current.Store(&next)
			logger.Info("config reloaded", "path", next.Source)
		}, func(err error) {
			logger.Warn("config reload failed", "error", err)
		})
		if err != nil {
			logger.Warn("cannot watch config file", "path", cfg.Source, "error", err)
		}
	}

	sshServer, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.SSHAddr,
		HostKeyPath: config.ExpandHome(cfg.Server.HostKey),
		IdleTimeout: cfg.Server.IdleTimeout,
	}, scoreSaver(store), func() config.Config { return *current.Load() }, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting snake SSH server on %s\n", sshServer.Addr())
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	var (
		wg      sync.WaitGroup
		httpErr error
	)
	if cfg.Server.HTTPAddr != "" {
		if store == nil {
			logger.Warn("HTTP scoreboard disabled without a scores database")
		} else {
			scoreboard := httpapi.New(cfg.Server.HTTPAddr, store, logger)
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := scoreboard.Serve(ctx); err != nil {
					httpErr = err
					stop()
				}
			}()
		}
	}

	sshErr := sshServer.Serve(ctx)
	stop()
	wg.Wait()

	if sshErr != nil {
		return sshErr
	}
	return httpErr
}
