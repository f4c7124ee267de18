package models

import "time"

type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Identity is the caller identity attached to a request: a stored profile
// or the guest sentinel. Guests never touch persistence.
type Identity struct {
	ProfileID int64
	Guest     bool
}

// GuestIdentity is the sentinel identity for anonymous play.
var GuestIdentity = Identity{Guest: true}

func ProfileIdentity(id int64) Identity {
	return Identity{ProfileID: id}
}
