package main

import (
	stderrors "errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/veltrix/httpwire"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Accept connections and parse HTTP/1.x messages off the wire",
	RunE:  runServe,
	Example: "# ehttpfeed serve --config ehttpfeed.yaml",
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveConfigPath != "" && !fileExists(serveConfigPath) {
		return errors.Errorf("config file %q does not exist", serveConfigPath)
	}
	cfg, err := loadConfigPath(serveConfigPath)
	if err != nil {
		return err
	}

	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return err
	}

	log := newLogger(cfg.Logging)
	defer log.Sync() //nolint:errcheck

	var admin *adminServer
	if cfg.Admin.Enabled {
		admin = newAdminServer(cfg.Admin, log)
		go func() {
			if err := admin.ListenAndServe(); err != nil && err != net.ErrClosed {
				log.Errorw("admin server stopped", "error", err)
			}
		}()
	}

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return errors.Wrapf(err, "listening on %q", cfg.Listen)
	}
	log.Infof("ehttpfeed listening on %s (mode=%s)", cfg.Listen, cfg.Mode)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Infof("shutting down")
		_ = ln.Close()
		if admin != nil {
			_ = admin.Close()
		}
	}()

	var shutdownErrs *multierror.Error
	for {
		conn, err := ln.Accept()
		if err != nil {
			if stderrors.Is(err, net.ErrClosed) {
				break
			}
			shutdownErrs = multierror.Append(shutdownErrs, err)
			continue
		}
		connectionsTotal.Inc()
		h := newConnHandler(conn, mode, log)
		go h.serve()
	}
	return shutdownErrs.ErrorOrNil()
}

func parseMode(s string) (httpwire.Mode, error) {
	switch s {
	case "request":
		return httpwire.ModeRequest, nil
	case "response":
		return httpwire.ModeResponse, nil
	case "detect", "":
		return httpwire.ModeDetect, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: want request, response, or detect", s)
	}
}
