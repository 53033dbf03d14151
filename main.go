package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-container/framework/app"
	"github.com/km-arc/go-container/framework/console"
	"github.com/km-arc/go-container/framework/container"
)

// ── Demo classes ─────────────────────────────────────────────────────────────

type Engine struct {
	Power int
}

type Car struct {
	Engine *Engine
	Age    int
	Color  string
}

// AppServiceProvider declares the demo classes and registers an engine.
// Cars are pushed through CONTAINER_MANIFEST or POST /container:
//
//	curl -X POST localhost:8000/container \
//	  -d '{"params":{"age":3},"register":["App\\Car"]}'
type AppServiceProvider struct {
	container.BaseProvider
}

func (p *AppServiceProvider) Define(classes *container.Classes) {
	classes.Define("App\\Engine", newEngine).Optional("power", "int", 150)

	classes.Define("App\\Car", newCar).
		Typed("engine", "App\\Engine").
		Typed("age", "int").
		Optional("color", "string", "red")
}

// newEngine builds an Engine from (power int).
func newEngine(args []any) (any, error) {
	power, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("power must be an integer, got %T", args[0])
	}
	return &Engine{Power: power}, nil
}

// newCar builds a Car from (engine *Engine, age int, color string). Overrides
// arrive untyped, so every argument is checked.
func newCar(args []any) (any, error) {
	engine, ok := args[0].(*Engine)
	if !ok {
		return nil, fmt.Errorf("engine must be *main.Engine, got %T", args[0])
	}
	age, ok := args[1].(int)
	if !ok {
		return nil, fmt.Errorf("age must be an integer, got %T", args[1])
	}
	color, ok := args[2].(string)
	if !ok {
		return nil, fmt.Errorf("color must be a string, got %T", args[2])
	}
	return &Car{Engine: engine, Age: age, Color: color}, nil
}

func (p *AppServiceProvider) Register(app *container.Container) error {
	return app.Register("App\\Engine", nil)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, console.Paint(os.Stderr, console.Red, "error: "+err.Error()))
		slog.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	application := app.New() // loads .env automatically
	if err := application.AddProvider(&AppServiceProvider{}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}
