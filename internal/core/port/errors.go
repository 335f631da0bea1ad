package port

import "errors"

var (
	// ErrNotFound signals that a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoEligibleCampaign is the no-fill outcome of ad selection. It is
	// a normal result, not a fault: the eligibility filter left nothing
	// to rank.
	ErrNoEligibleCampaign = errors.New("no eligible campaign")

	// ErrNoImpression rejects a click on a campaign the client was never
	// shown. Recording it would corrupt spend accounting.
	ErrNoImpression = errors.New("no impression recorded for client")

	// ErrValidation covers malformed entities and request payloads.
	ErrValidation = errors.New("validation failed")

	// ErrModerationRejected is returned when ad text fails moderation.
	ErrModerationRejected = errors.New("ad text rejected by moderation")

	// ErrDayRollback rejects an attempt to move the simulated day backward.
	ErrDayRollback = errors.New("current day cannot move backward")
)
