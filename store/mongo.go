package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todo-api/models"
)

type MongoTodoStore struct {
	coll *mongo.Collection
}

func NewMongoTodoStore(database *mongo.Database) *MongoTodoStore {
	return &MongoTodoStore{coll: database.Collection("todos")}
}

func (s *MongoTodoStore) Create(ctx context.Context, todo *models.Todo) error {
	res, err := s.coll.InsertOne(ctx, todo)
	if err != nil {
		return err
	}
	todo.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoTodoStore) All(ctx context.Context) ([]models.Todo, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var todos []models.Todo
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *MongoTodoStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	var todo models.Todo
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *MongoTodoStore) Delete(ctx context.Context, id primitive.ObjectID) (*models.Todo, error) {
	var todo models.Todo
	err := s.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

func (s *MongoTodoStore) Update(ctx context.Context, id primitive.ObjectID, update TodoUpdate) (*models.Todo, error) {
	set := bson.M{}
	if update.Text != nil {
		set["text"] = *update.Text
	}
	if update.Completed != nil {
		set["completed"] = *update.Completed
	}

	var change bson.M
	if update.CompletedAt != nil {
		set["completedAt"] = *update.CompletedAt
		change = bson.M{"$set": set}
	} else {
		change = bson.M{"$set": set, "$unset": bson.M{"completedAt": ""}}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var todo models.Todo
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, change, opts).Decode(&todo)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(database *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: database.Collection("users")}
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	if user.Tokens == nil {
		user.Tokens = []models.AuthToken{}
	}
	res, err := s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByToken(ctx context.Context, id primitive.ObjectID, token string) (*models.User, error) {
	filter := bson.M{
		"_id":           id,
		"tokens.access": "auth",
		"tokens.token":  token,
	}
	var user models.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) AppendToken(ctx context.Context, id primitive.ObjectID, token models.AuthToken) error {
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$push": bson.M{"tokens": token}})
	return err
}

func (s *MongoUserStore) RemoveToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$pull": bson.M{"tokens": bson.M{"token": token}}})
	return err
}
