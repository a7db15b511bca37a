package entity

import "time"

// Customer representa un cliente del depósito (carpinterías, constructoras, mostrador).
type Customer struct {
	ID        string
	Name      string
	Document  string // NIT o Cédula
	Email     string
	Phone     string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
