package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"todo-api/db"
	"todo-api/handlers"
	appmw "todo-api/middleware"
	"todo-api/store"
)

func main() {

	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx)
	if err != nil {
		log.Fatal("DB connection error:", err)
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatal("Error creating indexes:", err)
	}

	todos := store.NewMongoTodoStore(database)
	users := store.NewMongoUserStore(database)
	r := newRouter(todos, users)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Server running on http://localhost:" + port)
	http.ListenAndServe(":"+port, r)
}

func newRouter(todos store.TodoStore, users store.UserStore) *chi.Mux {
	todoHandler := handlers.NewTodoHandler(todos)
	userHandler := handlers.NewUserHandler(users)

	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-auth")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Expose-Headers", "x-auth")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(appmw.OptionalAuth(users))
		r.Post("/todos", todoHandler.Create)
	})
	r.Get("/todos", todoHandler.List)
	r.Get("/todos/{id}", todoHandler.Get)
	r.Delete("/todos/{id}", todoHandler.Delete)
	r.Patch("/todos/{id}", todoHandler.Update)

	r.Post("/users", userHandler.Register)
	r.Post("/users/login", userHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(users))
		r.Get("/users/me", userHandler.Me)
		r.Delete("/users/me/token", userHandler.Logout)
	})

	return r
}
