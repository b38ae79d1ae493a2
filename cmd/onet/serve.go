package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host Onet over SSH",
	Long: `Accept SSH connections and run a private Onet session for each one.

The SSH user name is the player name, so every visitor's runs land on one
shared scoreboard. The host key is read from --host-key, or generated at
~/.arcade/host_key on first start.

Examples:
  onet serve
  onet serve --ssh :2222 --idle-timeout 10m
  onet serve --host-key ./host_key --db ./scores.db

Connect with:
  ssh -p 23234 localhost`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated when empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect sessions idle this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		TickRate:    flagFPS,
	}, logger.WithPrefix("onet-ssh"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Serving Onet on %s, Ctrl+C stops\n", server.Addr())
	return server.ListenAndServe(ctx)
}
