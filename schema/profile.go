package schema

import "time"

const (
	ProfileCollection = "profile"
)

// profile roles
const (
	RoleVictim    = "victim"
	RoleVolunteer = "volunteer"
	RoleDonor     = "donor"
	RoleNGO       = "ngo"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleVictim, RoleVolunteer, RoleDonor, RoleNGO:
		return true
	}
	return false
}

// Profile - user profile data, one per account
type Profile struct {
	ID             string    `bson:"id" json:"id"`
	AccountNumber  string    `bson:"account_number" json:"account_number"`
	Email          string    `bson:"email" json:"email"`
	FullName       string    `bson:"full_name" json:"full_name"`
	PhoneNumber    string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Role           string    `bson:"role" json:"role"`
	PasswordDigest []byte    `bson:"password_digest" json:"-"`
	Location       *GeoJSON  `bson:"location,omitempty" json:"-"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
