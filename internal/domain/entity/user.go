package entity

import "time"

// User is a team member profile. Profiles are provisioned lazily on first
// authenticated request with the lowest-privilege role; unlike the other
// entity kinds they are never soft-deleted.
type User struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Email       string     `bson:"email" json:"email"`
	Role        Role       `bson:"role" json:"role"`
	UserFields  `bson:",inline"`
	LastLoginAt *time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// UserFields are the profile fields a user (or an admin) may edit. Email and
// role are managed separately: email comes from the identity provider, role
// changes are admin-only. No bson omitempty: updates replace the whole
// block, so cleared fields must still marshal.
type UserFields struct {
	Firstname          string     `bson:"firstname" json:"firstname"`
	Surname            string     `bson:"surname" json:"surname"`
	Phone              string     `bson:"phone" json:"phone"`
	Residence          string     `bson:"residence" json:"residence"`
	OperatorNumber     string     `bson:"operatorNumber" json:"operatorNumber"`
	PilotNumber        string     `bson:"pilotNumber" json:"pilotNumber"`
	Qualifications     []string   `bson:"qualifications" json:"qualifications"`
	InsuranceExpiry    *time.Time `bson:"insuranceExpiry" json:"insuranceExpiry,omitempty"`
	QualificationsExpy *time.Time `bson:"qualificationsExpiry" json:"qualificationsExpiry,omitempty"`
}

// DisplayName returns a human-readable name for audit descriptions.
func (u *User) DisplayName() string {
	if u.Firstname == "" && u.Surname == "" {
		return u.Email
	}
	return u.Firstname + " " + u.Surname
}
