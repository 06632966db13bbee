package cmd

import (
	"context"
	"io"

	"github.com/msto63/devconsole/foundation/console/builtin"
	"github.com/msto63/devconsole/foundation/console/command"
	"github.com/msto63/devconsole/foundation/console/dispatch"
	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/core/config"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
	"github.com/msto63/devconsole/internal/demo"
)

// session bundles the registry and dispatcher shared by all front ends
type session struct {
	cfg        *config.Config
	logger     *mdwlog.Logger
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
}

// newSession registers the built-in and demo commands. Log output goes to
// logOutput; host receives clear and exit requests. quiet limits logging to
// warnings unless --verbose is set.
func newSession(cfg *config.Config, logOutput io.Writer, host builtin.Host, quiet bool) (*session, error) {
	logger := cfg.Logger("devconsole", logOutput)
	switch {
	case verbose:
		logger = logger.WithLevel(mdwlog.LevelDebug)
	case quiet && logger.IsLevelEnabled(mdwlog.LevelInfo):
		logger = logger.WithLevel(mdwlog.LevelWarn)
	}

	reg := registry.New(registry.Options{
		Logger:         logger,
		NumSuggestions: cfg.Console.NumSuggestions,
	})
	if err := builtin.Register(reg, host); err != nil {
		return nil, err
	}
	if err := demo.Register(reg, demo.NewMixer()); err != nil {
		return nil, err
	}

	d, err := dispatch.New(dispatch.Options{
		Logger:         logger,
		Registry:       reg,
		MaxInputLength: cfg.Console.MaxInputLength,
	})
	if err != nil {
		return nil, err
	}
	d.OnEntered(demo.RawListener(logger))

	return &session{
		cfg:        cfg,
		logger:     logger,
		registry:   reg,
		dispatcher: d,
	}, nil
}

// submit runs one line with the configured command timeout
func (s *session) submit(line string, out command.Output) *dispatch.Result {
	ctx := context.Background()
	if timeout := s.cfg.Console.CommandTimeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.dispatcher.Submit(ctx, line, out)
}
