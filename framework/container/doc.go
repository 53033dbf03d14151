// Package container provides a small dependency-injection registry modelled
// on PHP containers that build classes by name.
//
// # Overview
//
// Go has no runtime constructor reflection, so the constructible types are
// declared up front in a Classes table: an identifier, an ordered parameter
// list and a positional constructor. The Container then builds instances by
// identifier, resolving each parameter either from an override map supplied
// by the caller or from instances it already holds.
//
// # Declaring classes
//
//	classes := container.NewClasses()
//
//	// PHP: class Engine { }
//	classes.DefineZero("App\\Engine", func() any { return &Engine{} })
//
//	// PHP: function __construct(Engine $engine, int $age, string $color = "red")
//	classes.Define("App\\Car", func(args []any) (any, error) {
//	    return &Car{Engine: args[0].(*Engine), Age: args[1].(int), Color: args[2].(string)}, nil
//	}).
//	    Typed("engine", "App\\Engine").
//	    Typed("age", "int").
//	    Optional("color", "string", "red")
//
// # Registering and resolving
//
//	c := container.New(classes)
//	_ = c.Register("App\\Engine", nil)
//	_ = c.Register("App\\Car", container.Params{"age": 3})
//
//	car, err := container.Resolve[*Car](c, "App\\Car")
//
// Batch registration shares one override set and stops at the first error:
//
//	err := c.MultiplePush(container.Params{"age": 3}, "App\\Engine", "App\\Car")
//
// # Parameter resolution
//
// A parameter whose type names a declared class is a dependency: it is taken
// from Params under the class identifier if present, otherwise from the
// container, otherwise registration fails with *NotFoundError. Any other
// parameter is taken from Params under its name, otherwise from its default,
// otherwise registration fails with *MissingParameterError.
//
// Defaults declared on dependency parameters are never used.
//
// # Service Providers
//
//	registry := container.NewProviderRegistry(c)
//	_ = registry.Register(&AppServiceProvider{})
//	err := registry.Boot()
package container
