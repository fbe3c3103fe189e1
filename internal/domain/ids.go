package domain

import "github.com/google/uuid"

// ensureID assigns a fresh UUID when the entity has none yet. Postgres and
// sqlite disagree on server-side UUID defaults, so IDs are generated here.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
