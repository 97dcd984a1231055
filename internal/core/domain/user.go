package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is a registered account. PasswordHash is excluded from every JSON
// response; it only ever holds the hasher's output, never a raw password.
type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string          `bson:"username" json:"username"`
	PasswordHash string          `bson:"password_hash" json:"-"`
	Email        string          `bson:"email" json:"email"`
	Birthday     *time.Time      `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Favorites    []bson.ObjectID `bson:"favorites" json:"favorites"`
	CreatedAt    time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at" json:"updated_at"`
}

// HasFavorite reports whether movieID is already on the user's list.
func (u *User) HasFavorite(movieID bson.ObjectID) bool {
	for _, id := range u.Favorites {
		if id == movieID {
			return true
		}
	}
	return false
}
