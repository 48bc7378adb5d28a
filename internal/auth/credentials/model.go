package credentials

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	Username       string
	PasswordDigest string
	CreatedAt      time.Time
}
