package auth

import "time"

// User is the stored account record. The password hash never crosses the API
// boundary: it carries no json tag field and handlers serialize users as-is.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	FirstName    string    `json:"firstName" bson:"first_name"`
	LastName     string    `json:"lastName" bson:"last_name"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	PasswordHash string    `json:"-" bson:"password_hash"`
}
