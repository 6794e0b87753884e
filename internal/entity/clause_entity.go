package entity

import (
	"time"

	"github.com/google/uuid"
)

type Clause struct {
	Id           uuid.UUID
	RegulationId uuid.UUID
	ClauseNumber *string
	Content      string
	// Position is the clause's zero-based index within its regulation;
	// together with CreatedAt it preserves store insertion order.
	Position  int
	CreatedAt time.Time
}
