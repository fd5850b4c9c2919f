package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account used for authentication.
//
// PasswordHash is a salted bcrypt digest and is never serialized to JSON;
// the plaintext password exists only inside the registration/login request
// and is never stored or logged.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"-"`
}

// CollectionName returns the name of the database collection
// holding user documents.
func (u User) CollectionName() string {
	return "users"
}
