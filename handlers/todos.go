package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"todo-api/middleware"
	"todo-api/models"
	"todo-api/store"
)

type TodoHandler struct {
	Todos store.TodoStore
}

func NewTodoHandler(todos store.TodoStore) *TodoHandler {
	return &TodoHandler{Todos: todos}
}

type createTodoRequest struct {
	Text string `json:"text"`
}

type updateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	json.NewDecoder(r.Body).Decode(&req)

	todo := models.Todo{Text: strings.TrimSpace(req.Text)}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		creator := user.ID
		todo.Creator = &creator
	}

	if verr := models.ValidateTodo(&todo); verr != nil {
		respondErr(w, verr)
		return
	}

	if err := h.Todos.Create(r.Context(), &todo); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Todos.All(r.Context())
	if err != nil {
		internalError(w)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"todos": todos})
}

func (h *TodoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.Todos.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"todo": todo})
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	todo, err := h.Todos.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"todo": todo})
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := todoID(w, r)
	if !ok {
		return
	}

	var req updateTodoRequest
	json.NewDecoder(r.Body).Decode(&req)

	update := store.TodoUpdate{Text: req.Text}
	if req.Completed != nil && *req.Completed {
		completed := true
		now := time.Now().UnixMilli()
		update.Completed = &completed
		update.CompletedAt = &now
	} else {
		// Absent or false both mean incomplete; completedAt is cleared.
		completed := false
		update.Completed = &completed
	}

	todo, err := h.Todos.Update(r.Context(), id, update)
	if errors.Is(err, store.ErrNotFound) {
		notFound(w)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"todo": todo})
}

// todoID parses the id path param, failing fast with 404 on malformed ids so
// an invalid id never reaches the store.
func todoID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w)
		return primitive.NilObjectID, false
	}
	return id, true
}
