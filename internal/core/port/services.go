package port

import (
	"context"
	"io"
)

// Clock is the simulated platform calendar. CurrentDay starts at 0 and
// only an explicit Advance moves it; implementations must reject moves
// backward with ErrDayRollback.
type Clock interface {
	CurrentDay(ctx context.Context) (int, error)
	Advance(ctx context.Context, day int) (int, error)
}

// ImageStorage stores campaign creatives on an object store.
type ImageStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
}

// TextService fronts the external text-generation model used for ad-text
// moderation and generation.
type TextService interface {
	// Moderate returns ok=false with a human-readable reason when the ad
	// text violates content policy.
	Moderate(ctx context.Context, adText string) (ok bool, reason string, err error)

	// Generate produces ad copy for a product, a target action and a
	// target audience description.
	Generate(ctx context.Context, productName, targetAction, targetAudience string) (string, error)
}
