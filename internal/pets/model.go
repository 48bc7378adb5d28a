package pets

import (
	"time"

	"github.com/google/uuid"
)

type Pet struct {
	ID         int64
	Name       string
	OwnerName  string
	OwnerPhone string
	Age        int
	Type       int
	VetID      *int64
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
}

// Types maps pet type ids to their display names. The set is fixed;
// it is not stored in the database.
func Types() map[int]string {
	return map[int]string{
		1: "Cat",
		2: "Dog",
		3: "Lizard",
		4: "Horse",
	}
}
