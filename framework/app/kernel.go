package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/km-arc/go-container/framework/config"
	"github.com/km-arc/go-container/framework/console"
	"github.com/km-arc/go-container/framework/container"
	gohttp "github.com/km-arc/go-container/framework/http"
	"github.com/km-arc/go-container/framework/manifest"
	"github.com/km-arc/go-container/framework/providers"
	"github.com/km-arc/go-container/framework/routing"
)

// Application is the top-level application container.
// It embeds the registry and the ProviderRegistry so user code can call
// app.Register(), app.MultiplePush(), app.Get() directly, like $app in
// Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry

	booted  bool
	bootErr error
	mount   sync.Once
}

// New creates the application with the framework core providers added
// (config, logger, router). Nothing is built until Boot.
func New(envFiles ...string) *Application {
	return NewWithProviders(
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LogServiceProvider{},
		&providers.RoutingServiceProvider{},
	)
}

// NewWithProviders creates an application with exactly the given providers.
func NewWithProviders(ps ...container.ServiceProvider) *Application {
	c := container.New(container.NewClasses())
	app := &Application{
		Container: c,
		Providers: container.NewProviderRegistry(c),
	}
	for _, p := range ps {
		// Adding before Boot only declares classes and cannot fail.
		_ = app.Providers.Register(p)
	}
	return app
}

// AddProvider adds a ServiceProvider. After Boot it is registered and booted
// immediately.
//
//	// Laravel: $app->register(AppServiceProvider::class)
func (a *Application) AddProvider(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot registers and boots every provider, then applies the configured
// manifest, if any. Boot runs once: a failure is returned again by later
// calls, since registrations made before it cannot be undone.
func (a *Application) Boot() error {
	if a.booted || a.bootErr != nil {
		return a.bootErr
	}
	a.bootErr = a.boot()
	a.booted = a.bootErr == nil
	return a.bootErr
}

func (a *Application) boot() error {
	if err := a.Providers.Boot(); err != nil {
		return fmt.Errorf("boot providers: %w", err)
	}

	path := a.Config().Container.Manifest
	if path == "" {
		return nil
	}
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if err := m.Apply(a.Container); err != nil {
		return fmt.Errorf("apply manifest %s: %w", path, err)
	}
	a.Logger().Info("manifest applied", "path", path, "registered", len(m.Register), "count", a.Count())
	return nil
}

// Config returns the "config" instance. It panics before Boot.
func (a *Application) Config() *config.Config {
	return mustResolve[*config.Config](a.Container, "config")
}

// Logger returns the "logger" instance. It panics before Boot.
func (a *Application) Logger() *slog.Logger {
	return mustResolve[*slog.Logger](a.Container, "logger")
}

// Router returns the "router" instance. It panics before Boot.
func (a *Application) Router() *routing.Router {
	return mustResolve[*routing.Router](a.Container, "router")
}

// Handler boots the application if needed and returns the router, with the
// container routes mounted under /container when CONTAINER_API is set.
func (a *Application) Handler() (http.Handler, error) {
	if err := a.Boot(); err != nil {
		return nil, err
	}
	router := a.Router()
	a.mount.Do(func() {
		if a.Config().Container.API {
			gohttp.NewContainerHandler(a.Container).Routes(router, "/container")
		}
	})
	return router, nil
}

// Run boots the application (if needed) and serves HTTP until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}
	cfg := a.Config()
	addr := ":" + cfg.App.Port
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	fmt.Printf("%s  %s running on http://localhost%s  [%s]  %d instances\n",
		console.Paint(os.Stdout, console.Green, "▶"),
		cfg.App.Name, addr, cfg.App.Env, a.Count())

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		a.Logger().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
func (a *Application) Version() string     { return "0.1.0" }

func mustResolve[T any](l container.Lookup, id string) T {
	v, err := container.Resolve[T](l, id)
	if err != nil {
		panic(fmt.Sprintf("app: %v (was Boot called?)", err))
	}
	return v
}
