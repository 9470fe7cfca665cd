package entity

import "time"

// Factory is a customer site bills are issued against. OwnerID is a weak
// back-reference used only for authorization filtering; a Factory does not
// own its User.
type Factory struct {
	ID        string
	Name      string
	Address   string // optional
	OwnerID   string
	CreatedAt time.Time
}
