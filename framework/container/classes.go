package container

import (
	"fmt"
	"reflect"
	"sync"
)

// ── Descriptors ───────────────────────────────────────────────────────────────

// Constructor builds an instance from positional arguments, one per Param.
type Constructor func(args []any) (any, error)

// Param describes one constructor parameter. Its position is its index in
// Class.Params.
type Param struct {
	Name string
	// Type is a type identifier. It makes the parameter a dependency only
	// when it names a class known to the Classes table.
	Type       string
	Default    any
	HasDefault bool
}

// Class is the constructor signature of a registrable type.
type Class struct {
	Name   string
	Params []Param
	// New is nil for classes without a declared constructor; those are
	// built with Zero.
	New  Constructor
	Zero func() any
}

// build instantiates the class with already resolved arguments.
func (cl *Class) build(args []any) (any, error) {
	if cl.New == nil {
		return cl.Zero(), nil
	}
	return cl.New(args)
}

// ── Classes ───────────────────────────────────────────────────────────────────

// Classes is the table of constructible types the container can build.
// It answers "does this identifier name a class?" and "what does its
// constructor take?".
//
//	// PHP: class_exists(Car::class) && new ReflectionClass(Car::class)
//	classes := container.NewClasses()
//	classes.Define("App\\Car", newCar).Typed("engine", "App\\Engine").Param("age")
type Classes struct {
	mu      sync.RWMutex
	classes map[string]*Class
}

// NewClasses creates an empty class table.
func NewClasses() *Classes {
	return &Classes{classes: make(map[string]*Class)}
}

// Define declares name with a positional constructor. Parameters are added
// through the returned builder, in declaration order. Defining an existing
// name replaces it. It panics if ctor is nil.
func (cs *Classes) Define(name string, ctor Constructor) *ClassBuilder {
	if ctor == nil {
		panic(fmt.Sprintf("container: Define(%q) with a nil constructor", name))
	}
	cl := &Class{Name: name, New: ctor}
	cs.put(cl)
	return &ClassBuilder{classes: cs, class: cl}
}

// DefineZero declares name as a class without a declared constructor.
// It panics if zero is nil.
func (cs *Classes) DefineZero(name string, zero func() any) {
	if zero == nil {
		panic(fmt.Sprintf("container: DefineZero(%q) with a nil factory", name))
	}
	cs.put(&Class{Name: name, Zero: zero})
}

func (cs *Classes) put(cl *Class) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.classes[cl.Name] = cl
}

// Exists reports whether name is a known class.
func (cs *Classes) Exists(name string) bool {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	_, ok := cs.classes[name]
	return ok
}

// Lookup returns a snapshot of the class declared under name.
func (cs *Classes) Lookup(name string) (Class, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	cl, ok := cs.classes[name]
	if !ok {
		return Class{}, false
	}
	snapshot := *cl
	snapshot.Params = append([]Param(nil), cl.Params...)
	return snapshot, true
}

// Len returns the number of declared classes.
func (cs *Classes) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.classes)
}

// ── Reflect helpers ───────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// class identifier.
//
//	key := container.TypeKey((*Engine)(nil))  // "main.Engine"
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// Of declares T as a class without a constructor, identified by TypeKey.
// Instances are *T.
//
//	id := container.Of[Logger](classes)
//	_ = c.Register(id, nil)
func Of[T any](cs *Classes) string {
	name := TypeKey((*T)(nil))
	cs.DefineZero(name, func() any { return new(T) })
	return name
}
