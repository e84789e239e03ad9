package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"powtool/config"
	"powtool/core"
	"powtool/interfaces"
	"powtool/logger"
	"powtool/pow"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// session bundles what every puzzle command needs.
type session struct {
	cfg    *config.Config
	engine *pow.ProofOfWork
	store  interfaces.SolutionStore
	puzzle *core.Puzzle
}

func newSession(cmd *cobra.Command, withStore bool) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	logger.SetLevel(cfg.GetLogLevel())

	pc := cfg.PowConfig()
	pc.Progress = core.LogProgress
	engine, err := pow.NewProofOfWork(pc)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Engine ready: algorithm=%s encoding=%s workers=%d", engine.Algorithm(), engine.Encoding().Name(), engine.Workers())

	var store interfaces.SolutionStore
	if withStore {
		if store, err = core.OpenStore(cfg); err != nil {
			return nil, err
		}
	}

	return &session{
		cfg:    cfg,
		engine: engine,
		store:  store,
		puzzle: core.NewPuzzle(engine, store, cmd.OutOrStdout(), cfg.Quiet),
	}, nil
}

// searchContext is canceled by SIGINT/SIGTERM or once the configured timeout
// elapses.
func (s *session) searchContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	if s.cfg.Timeout <= 0 {
		return ctx, stop
	}
	tctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	return tctx, func() {
		cancel()
		stop()
	}
}

func (s *session) Close() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		logger.Warningf("Failed to close solution cache: %v", err)
	}
}
