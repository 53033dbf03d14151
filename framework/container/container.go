package container

import "sync"

// Params is the override set supplied at registration time. A key is either
// a parameter name ("age") or a class identifier ("App\\Engine").
type Params map[string]any

// Container is the registry of constructed instances. Each identifier maps
// to at most one instance; entries are never replaced or removed.
//
//	// PHP: $container->register(Car::class, ['age' => 3]);
//	c := container.New(classes)
//	err := c.Register("App\\Car", container.Params{"age": 3})
type Container struct {
	store

	classes *Classes

	// regMu serializes Register so the duplicate check and the insert are
	// one step. Reads go through store.mu only, so constructors may call
	// Get and Has but must not call Register.
	regMu sync.Mutex
}

// New creates an empty container that builds classes declared in classes.
func New(classes *Classes) *Container {
	if classes == nil {
		classes = NewClasses()
	}
	return &Container{
		store:   store{instances: make(map[string]any)},
		classes: classes,
	}
}

// Classes returns the class table the container builds from.
func (c *Container) Classes() *Classes { return c.classes }

// ── Registration ──────────────────────────────────────────────────────────────

// Register builds the class id and stores the instance under id.
//
// It fails with *DuplicateRegistrationError if id is already stored, with
// *NotFoundError if id is not a declared class or a class dependency is
// missing, and with *MissingParameterError if a plain parameter has neither
// an override nor a default.
func (c *Container) Register(id string, params Params) error {
	c.regMu.Lock()
	defer c.regMu.Unlock()

	if c.Has(id) {
		return &DuplicateRegistrationError{ID: id}
	}

	class, ok := c.classes.Lookup(id)
	if !ok {
		return &NotFoundError{ID: id, Class: true}
	}

	var args []any
	if class.New != nil && len(class.Params) > 0 {
		var err error
		if args, err = c.arguments(class, params); err != nil {
			return err
		}
	}

	inst, err := class.build(args)
	if err != nil {
		return &ConstructionError{Class: id, Err: err}
	}
	return c.insert(id, inst)
}

// MultiplePush registers every id in order with the same params. The first
// failure is returned; earlier registrations are kept.
//
//	// PHP: $container->multiplePush(['age' => 7], Engine::class, Car::class);
func (c *Container) MultiplePush(params Params, ids ...string) error {
	for _, id := range ids {
		if err := c.Register(id, params); err != nil {
			return err
		}
	}
	return nil
}

// ── Resolution ────────────────────────────────────────────────────────────────

// arguments resolves one positional argument per constructor parameter.
func (c *Container) arguments(class Class, params Params) ([]any, error) {
	args := make([]any, len(class.Params))
	for pos, p := range class.Params {
		v, err := c.argument(class.Name, p, params)
		if err != nil {
			return nil, err
		}
		args[pos] = v
	}
	return args, nil
}

// argument resolves a single parameter. Whether p is a dependency is
// decided once, from its declared type; the other key kind is never tried.
func (c *Container) argument(class string, p Param, params Params) (any, error) {
	if p.Type == "" || !c.classes.Exists(p.Type) {
		if v, ok := params[p.Name]; ok {
			return v, nil
		}
		if p.HasDefault {
			return p.Default, nil
		}
		return nil, &MissingParameterError{Class: class, Name: p.Name}
	}

	// Defaults are not consulted for dependencies.
	if v, ok := params[p.Type]; ok {
		return v, nil
	}
	return c.Get(p.Type)
}
