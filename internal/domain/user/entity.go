package user

import (
	"github.com/google/uuid"
)

// Profile is the slice of the storefront user profile this service reads and
// mutates: contact email plus the loyalty counters.
type Profile struct {
	id            uuid.UUID
	email         Email
	loyaltyPoints int64
	spinEligible  bool
}

func ReconstructProfile(id uuid.UUID, email Email, loyaltyPoints int64, spinEligible bool) *Profile {
	if loyaltyPoints < 0 {
		loyaltyPoints = 0
	}
	return &Profile{
		id:            id,
		email:         email,
		loyaltyPoints: loyaltyPoints,
		spinEligible:  spinEligible,
	}
}

// AddPoints never lets the counter drop below zero, whatever the sign of delta.
func (p *Profile) AddPoints(delta int64) {
	p.loyaltyPoints += delta
	if p.loyaltyPoints < 0 {
		p.loyaltyPoints = 0
	}
}

func (p *Profile) SetSpinEligible(v bool) { p.spinEligible = v }

func (p *Profile) ID() uuid.UUID        { return p.id }
func (p *Profile) Email() Email         { return p.email }
func (p *Profile) LoyaltyPoints() int64 { return p.loyaltyPoints }
func (p *Profile) SpinEligible() bool   { return p.spinEligible }
