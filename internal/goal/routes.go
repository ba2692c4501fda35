package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/tasks", h.ReplaceTasks)
	r.Patch("/{id}/tasks", h.AddTasks)
	r.Get("/{id}/tasks", h.ListTasks)

	return r
}
