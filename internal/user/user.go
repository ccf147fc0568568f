package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. The credential is stored only as a bcrypt
// hash; the raw password never leaves the Register/Authenticate calls.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
