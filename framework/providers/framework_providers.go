package providers

import (
	"io"
	"log/slog"
	"os"

	"github.com/km-arc/go-container/framework/config"
	"github.com/km-arc/go-container/framework/container"
	"github.com/km-arc/go-container/framework/logging"
	"github.com/km-arc/go-container/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// registers it in the container as "config".
//
// Declared classes:
//   - "config"  → *config.Config (param envFiles, default: none)
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Define(classes *container.Classes) {
	classes.Define("config", func(args []any) (any, error) {
		files, _ := args[0].([]string)
		return config.Load(files...), nil
	}).Optional("envFiles", "", nil)
}

func (p *ConfigServiceProvider) Register(app *container.Container) error {
	var params container.Params
	if len(p.EnvFiles) > 0 {
		params = container.Params{"envFiles": p.EnvFiles}
	}
	return app.Register("config", params)
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider builds the structured logger from "config".
//
// Declared classes:
//   - "logger"  → *slog.Logger (depends on "config"; param out, default stderr)
//
// The logger also becomes slog's default once booted.
type LogServiceProvider struct {
	container.BaseProvider
	Out io.Writer
}

func (p *LogServiceProvider) Define(classes *container.Classes) {
	classes.Define("logger", func(args []any) (any, error) {
		cfg := args[0].(*config.Config)
		out, _ := args[1].(io.Writer)
		if out == nil {
			out = os.Stderr
		}
		return logging.New(out, cfg.Log.Level, cfg.Log.Format)
	}).
		Typed("cfg", "config").
		Optional("out", "io.Writer", nil)
}

func (p *LogServiceProvider) Register(app *container.Container) error {
	var params container.Params
	if p.Out != nil {
		params = container.Params{"out": p.Out}
	}
	return app.Register("logger", params)
}

func (p *LogServiceProvider) Boot(app *container.Container) error {
	logger, err := container.Resolve[*slog.Logger](app, "logger")
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router. Every request carries
// the "logger" instance in its context and is logged once.
//
// Declared classes:
//   - "router"  → *routing.Router (depends on "logger")
//
// Laravel equivalent:
//
//	// Illuminate\Routing\RoutingServiceProvider
//	$app->singleton('router', fn($app) => new Router($app['events'], $app));
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Define(classes *container.Classes) {
	classes.Define("router", func(args []any) (any, error) {
		logger := args[0].(*slog.Logger)
		return routing.New(logging.Middleware(logger), logging.RequestLogger), nil
	}).Typed("logger", "logger")
}

func (p *RoutingServiceProvider) Register(app *container.Container) error {
	return app.Register("router", nil)
}
