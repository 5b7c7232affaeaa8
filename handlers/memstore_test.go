package handlers

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"todo-api/models"
	"todo-api/store"
)

// In-memory stores standing in for mongo in handler tests.

type fakeTodoStore struct {
	todos   []models.Todo
	failAll bool
}

func (s *fakeTodoStore) Create(_ context.Context, todo *models.Todo) error {
	todo.ID = primitive.NewObjectID()
	s.todos = append(s.todos, *todo)
	return nil
}

func (s *fakeTodoStore) All(_ context.Context) ([]models.Todo, error) {
	if s.failAll {
		return nil, errors.New("store unavailable")
	}
	return append([]models.Todo(nil), s.todos...), nil
}

func (s *fakeTodoStore) Get(_ context.Context, id primitive.ObjectID) (*models.Todo, error) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			todo := s.todos[i]
			return &todo, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeTodoStore) Delete(_ context.Context, id primitive.ObjectID) (*models.Todo, error) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			todo := s.todos[i]
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return &todo, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeTodoStore) Update(_ context.Context, id primitive.ObjectID, update store.TodoUpdate) (*models.Todo, error) {
	for i := range s.todos {
		if s.todos[i].ID != id {
			continue
		}
		if update.Text != nil {
			s.todos[i].Text = *update.Text
		}
		if update.Completed != nil {
			s.todos[i].Completed = *update.Completed
		}
		s.todos[i].CompletedAt = update.CompletedAt
		todo := s.todos[i]
		return &todo, nil
	}
	return nil, store.ErrNotFound
}

type fakeUserStore struct {
	users []*models.User
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	user.ID = primitive.NewObjectID()
	if user.Tokens == nil {
		user.Tokens = []models.AuthToken{}
	}
	copied := *user
	s.users = append(s.users, &copied)
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) FindByToken(_ context.Context, id primitive.ObjectID, token string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		for _, t := range u.Tokens {
			if t.Access == "auth" && t.Token == token {
				user := *u
				return &user, nil
			}
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) AppendToken(_ context.Context, id primitive.ObjectID, token models.AuthToken) error {
	for _, u := range s.users {
		if u.ID == id {
			u.Tokens = append(u.Tokens, token)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeUserStore) RemoveToken(_ context.Context, id primitive.ObjectID, token string) error {
	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		kept := u.Tokens[:0]
		for _, t := range u.Tokens {
			if t.Token != token {
				kept = append(kept, t)
			}
		}
		u.Tokens = kept
	}
	return nil
}
