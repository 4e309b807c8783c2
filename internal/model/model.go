package model

import "time"

// User is a credential-store identity record. PasswordHash is always set:
// accounts created through the federated flow get an unverifiable placeholder
// hash and carry the provider subject in Auth0ID instead.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Auth0ID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Contact struct {
	ID        string
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
