package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Advertiser owns campaigns. Relevance scores are kept per
// (client, advertiser) pair, so campaigns inherit the score of their owner.
type Advertiser struct {
	ID   uuid.UUID
	Name string
}

func (a Advertiser) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	return nil
}
