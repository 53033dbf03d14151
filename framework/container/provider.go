package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups class declarations with the registrations that use
// them, like Laravel's Illuminate\Support\ServiceProvider.
//
// Define is called as soon as the provider is added. Register is called by
// ProviderRegistry.Boot, in the order providers were added, and Boot after
// every provider has registered, so it is safe to Get other instances there.
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Define(classes *container.Classes) {
//	    classes.Define("mailer", newMailer).Typed("cfg", "config")
//	}
//
//	func (p *AppServiceProvider) Register(app *container.Container) error {
//	    return app.Register("mailer", nil)
//	}
type ServiceProvider interface {
	// Define declares the classes this provider can build.
	Define(classes *Classes)

	// Register pushes this provider's instances into the container.
	Register(app *Container) error

	// Boot runs after all providers are registered.
	Boot(app *Container) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct with a no-op Boot.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages declaration, registration and booting of
// ServiceProviders against one class table and one container.
type ProviderRegistry struct {
	classes    *Classes
	app        *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
	// bootErr is the error of a failed Boot. Registrations are permanent, so
	// a failed Boot is not retried.
	bootErr error
}

// NewProviderRegistry creates a registry bound to app and its class table.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		classes:    app.Classes(),
		app:        app,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Define method. Adding the same
// provider twice is a no-op. A provider added after Boot is registered and
// booted immediately.
//
//	// Laravel: $app->register(new AppServiceProvider($app))
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	r.registered[provider] = true
	provider.Define(r.classes)
	r.providers = append(r.providers, provider)

	if !r.booted {
		return nil
	}
	if err := provider.Register(r.app); err != nil {
		return err
	}
	return provider.Boot(r.app)
}

// Boot registers every provider, then boots every provider. The first error
// aborts. Boot runs once: later calls return nil after a success and the
// same error after a failure, since instances registered before the failure
// stay in the container.
//
//	// Laravel: $app->boot()
func (r *ProviderRegistry) Boot() error {
	if r.booted || r.bootErr != nil {
		return r.bootErr
	}
	r.bootErr = r.boot()
	r.booted = r.bootErr == nil
	return r.bootErr
}

func (r *ProviderRegistry) boot() error {
	for _, provider := range r.providers {
		if err := provider.Register(r.app); err != nil {
			return err
		}
	}
	for _, provider := range r.providers {
		if err := provider.Boot(r.app); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true if Boot() has succeeded.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all added providers in order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
