package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/km-arc/go-container/framework/container"
	"github.com/km-arc/go-container/framework/logging"
	"github.com/km-arc/go-container/framework/manifest"
	"github.com/km-arc/go-container/framework/routing"
)

// ContainerHandler exposes a container over HTTP:
//
//	GET  /container       → {"data": {"count": N}}
//	GET  /container/{id}  → {"data": {"id": id, "type": "*main.Car"}} or 404
//	POST /container       → manifest body {"params": {...}, "register": [...]}
type ContainerHandler struct {
	app *container.Container
}

// NewContainerHandler creates a handler for app.
func NewContainerHandler(app *container.Container) *ContainerHandler {
	return &ContainerHandler{app: app}
}

// Routes mounts the handler under prefix.
func (h *ContainerHandler) Routes(r *routing.Router, prefix string) {
	r.Prefix(prefix, func(c *routing.Router) {
		c.Get("/", h.Count)
		c.Post("/", h.Store)
		c.Get("/{id}", h.Show)
	})
}

// Count reports how many instances are registered.
func (h *ContainerHandler) Count(w http.ResponseWriter, r *http.Request) {
	NewResponse(w).Success(map[string]any{"count": h.app.Count()})
}

// Show reports whether an id is registered and the type of its instance.
func (h *ContainerHandler) Show(w http.ResponseWriter, r *http.Request) {
	res := NewResponse(w)
	id := NewRequest(r).RouteParam("id")

	inst, err := h.app.Get(id)
	if err != nil {
		res.NotFound(err.Error())
		return
	}
	res.Success(map[string]any{"id": id, "type": fmt.Sprintf("%T", inst)})
}

// Store registers the ids of a manifest body, in order, with its shared
// params. On failure the ids registered before the failing one are reported
// alongside the error.
func (h *ContainerHandler) Store(w http.ResponseWriter, r *http.Request) {
	res := NewResponse(w)
	logger := logging.FromContext(r.Context())

	var doc any
	if err := NewRequest(r).Bind(&doc); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			res.Error(http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		res.ValidationError(map[string][]string{"body": {err.Error()}})
		return
	}
	m, err := manifest.FromDocument(doc)
	if err != nil {
		res.ValidationError(map[string][]string{"body": {err.Error()}})
		return
	}

	registered := make([]string, 0, len(m.Register))
	for _, id := range m.Register {
		if err := h.app.Register(id, container.Params(m.Params)); err != nil {
			logger.Warn("registration failed", "id", id, "error", err)
			res.JSON(statusFor(err), envelope{
				"message":    err.Error(),
				"registered": registered,
			})
			return
		}
		logger.Debug("registered", "id", id)
		registered = append(registered, id)
	}

	res.Created(map[string]any{"registered": registered, "count": h.app.Count()})
}

// statusFor maps a registration error to an HTTP status.
func statusFor(err error) int {
	var (
		dup      *container.DuplicateRegistrationError
		notFound *container.NotFoundError
		missing  *container.MissingParameterError
	)
	switch {
	case errors.As(err, &dup):
		return http.StatusConflict
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &missing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
