package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AuthToken is one entry in a user's tokens array. Access is always "auth"
// for tokens issued by this API.
type AuthToken struct {
	Access string `bson:"access" json:"access"`
	Token  string `bson:"token" json:"token"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Tokens   []AuthToken        `bson:"tokens" json:"-"`
}

type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Text      string             `bson:"text" json:"text"`
	Completed bool               `bson:"completed" json:"completed"`
	// CompletedAt is epoch milliseconds, present only while Completed is true.
	CompletedAt *int64              `bson:"completedAt,omitempty" json:"completedAt"`
	Creator     *primitive.ObjectID `bson:"_creator,omitempty" json:"_creator,omitempty"`
}
