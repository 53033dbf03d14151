package container

// ClassBuilder implements the fluent constructor-signature API returned by
// Classes.Define. Each call appends one parameter.
//
//	// PHP: public function __construct(Engine $engine, int $age, string $color = "red")
//	classes.Define("App\\Car", newCar).
//	    Typed("engine", "App\\Engine").
//	    Param("age").
//	    Optional("color", "string", "red")
type ClassBuilder struct {
	classes *Classes
	class   *Class
}

// Param appends an untyped parameter, always resolved by name.
func (b *ClassBuilder) Param(name string) *ClassBuilder {
	return b.add(Param{Name: name})
}

// Typed appends a parameter with a declared type identifier. If typeID names
// a class, the parameter is a dependency resolved from the container.
func (b *ClassBuilder) Typed(name, typeID string) *ClassBuilder {
	return b.add(Param{Name: name, Type: typeID})
}

// Optional appends a parameter with a default value. The default is only
// consulted when typeID does not name a class.
func (b *ClassBuilder) Optional(name, typeID string, value any) *ClassBuilder {
	return b.add(Param{Name: name, Type: typeID, Default: value, HasDefault: true})
}

func (b *ClassBuilder) add(p Param) *ClassBuilder {
	b.classes.mu.Lock()
	defer b.classes.mu.Unlock()
	b.class.Params = append(b.class.Params, p)
	return b
}
