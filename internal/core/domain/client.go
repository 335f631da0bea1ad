package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Gender values used by clients and targeting. Targeting additionally
// accepts GenderAll to match every client.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderAll    Gender = "ALL"
)

// Client is a consumer of ads. For ad selection it is read-only: the
// engine uses its demographics as a lookup key and never mutates it.
type Client struct {
	ID       uuid.UUID
	Login    string
	Age      int
	Location string
	Gender   Gender
}

// Validate checks the demographic constraints. Clients may not use the
// ALL gender, that value is reserved for targeting.
func (c Client) Validate() error {
	if c.Login == "" {
		return fmt.Errorf("login must not be empty")
	}
	if c.Age < 0 || c.Age > 100 {
		return fmt.Errorf("age %d out of range [0,100]", c.Age)
	}
	if c.Gender != GenderMale && c.Gender != GenderFemale {
		return fmt.Errorf("gender must be MALE or FEMALE")
	}
	return nil
}
