package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geowars/internal/games/geowars"
	"github.com/vovakirdan/geowars/internal/platform/tui"
	"github.com/vovakirdan/geowars/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a menu and its own observer.
Scores are stored per-server (all users share the same leaderboard).
Sound is never played for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.geowars/host_key

Examples:
  geowars serve                           # Listen on :23234 with auto-generated key
  geowars serve --ssh :2222               # Listen on port 2222
  geowars serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closer := newLogger(false)
	if closer != nil {
		defer closer.Close() //nolint:errcheck // shutting down
	}
	loadEnv(logger)
	cfg := loadConfig(logger)

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = flagDBPath
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.TickRate = flagFPS
	srvCfg.GameID = geowars.ID
	srvCfg.Logger = logger
	srvCfg.NewSession = func(user string) (registry.Deps, func()) {
		sessLog := logger.With("user", user)
		broker := newBroker(cfg.Advisor, sessLog)
		deps := registry.Deps{
			Logger:     sessLog,
			Advisor:    broker,
			ConfigPath: flagConfig,
			Preset:     flagDifficulty,
		}
		return deps, broker.Close
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return fail("create server", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting Geometry Wars SSH server on %s\n", srvCfg.Address)
	fmt.Fprintf(out, "Connect with: ssh localhost -p %s\n", portOf(srvCfg.Address))
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fail("serve", err)
	}
	return nil
}
