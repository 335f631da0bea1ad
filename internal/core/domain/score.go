package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// MLScore is an externally computed (client, advertiser) affinity used as
// a click-probability proxy during ranking. The engine only reads scores;
// a missing score is treated as zero.
type MLScore struct {
	ClientID     uuid.UUID
	AdvertiserID uuid.UUID
	Score        int
}

func (s MLScore) Validate() error {
	if s.Score < 0 {
		return fmt.Errorf("score must be non-negative")
	}
	return nil
}
