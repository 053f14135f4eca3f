package models

import (
	"time"

	"theatre/ticketing/internal/domain/fields"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Roles lists every role a user can hold. Roles are flat, there is no hierarchy.
var Roles = []string{RoleAdmin, RoleCustomer}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"hash_password"`
	Role         string `json:"role" db:"role"`
}

// AnonymousUser is put into the request context when no bearer token was sent.
var AnonymousUser = &User{}

func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}

type Play struct {
	ID       int64   `json:"id" db:"id"`
	Title    string  `json:"title" db:"title"`
	Genre    *string `json:"genre" db:"genre"`
	Synopsis *string `json:"synopsis" db:"synopsis"`
	Duration *string `json:"duration" db:"duration"`
}

type Actor struct {
	ID          int64      `json:"id" db:"id"`
	Name        *string    `json:"name" db:"name"`
	Gender      *string    `json:"gender" db:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
	PlayID      *int64     `json:"play_id" db:"play_id"`
}

type Director struct {
	ID     int64   `json:"id" db:"id"`
	Name   *string `json:"name" db:"name"`
	PlayID *int64  `json:"play_id" db:"play_id"`
}

type ShowTime struct {
	ID          int64      `json:"id" db:"id"`
	DateAndTime *time.Time `json:"date_and_time" db:"date_and_time"`
	PlayID      *int64     `json:"play_id" db:"play_id"`
}

type Customer struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"name" db:"name"`
	PhoneNumber *string `json:"phone_number" db:"phone_number"`
	Email       *string `json:"email" db:"email"`
	Address     *string `json:"address" db:"address"`
}

// TicketKey is the identity of a ticket: a seat within a showtime, play and customer.
type TicketKey struct {
	SeatRowNo  int32 `json:"seat_row_no" db:"seat_row_no"`
	SeatNo     int32 `json:"seat_no" db:"seat_no"`
	ShowtimeID int64 `json:"showtime_id" db:"showtime_id"`
	PlayID     int64 `json:"play_id" db:"play_id"`
	CustomerID int64 `json:"customer_id" db:"customer_id"`
}

type Ticket struct {
	TicketKey
	TicketNo *string      `json:"ticket_no" db:"ticket_no"`
	Price    fields.Price `json:"price" db:"price"`
}
