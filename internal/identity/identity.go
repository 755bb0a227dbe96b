package identity

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies an account. Each role has its own profile shape; there is
// no single record with conditionally required fields.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleOrganisation Role = "organisation"
	RoleDonor        Role = "donor"
	RoleHospital     Role = "hospital"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganisation, RoleDonor, RoleHospital:
		return true
	}

	return false
}

// Profile is the role-specific part of an account. The four implementations
// form a closed set; each carries only the fields its role requires, so a
// stored account can never be missing a role-mandated field.
type Profile interface {
	Role() Role
	DisplayName() string
}

type AdminProfile struct {
	Name string
}

func (p AdminProfile) Role() Role          { return RoleAdmin }
func (p AdminProfile) DisplayName() string { return p.Name }

type DonorProfile struct {
	Name string
}

func (p DonorProfile) Role() Role          { return RoleDonor }
func (p DonorProfile) DisplayName() string { return p.Name }

type OrganisationProfile struct {
	OrganisationName string
}

func (p OrganisationProfile) Role() Role          { return RoleOrganisation }
func (p OrganisationProfile) DisplayName() string { return p.OrganisationName }

type HospitalProfile struct {
	HospitalName string
}

func (p HospitalProfile) Role() Role          { return RoleHospital }
func (p HospitalProfile) DisplayName() string { return p.HospitalName }

// Account is a registered user of any role.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Address      string
	Phone        string
	Website      string // optional, organisations/hospitals only
	Profile      Profile
	CreatedAt    time.Time
}

func (a *Account) Role() Role {
	return a.Profile.Role()
}
