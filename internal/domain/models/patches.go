package models

import (
	"time"

	"theatre/ticketing/internal/domain/fields"
)

// Patch structs carry partial updates. A nil field means "leave as is".

type PlayPatch struct {
	Title    *string
	Genre    *string
	Synopsis *string
	Duration *string
}

func (p PlayPatch) Apply(play *Play) {
	if p.Title != nil {
		play.Title = *p.Title
	}
	if p.Genre != nil {
		play.Genre = p.Genre
	}
	if p.Synopsis != nil {
		play.Synopsis = p.Synopsis
	}
	if p.Duration != nil {
		play.Duration = p.Duration
	}
}

type ActorPatch struct {
	Name        *string
	Gender      *string
	DateOfBirth *time.Time
	PlayID      *int64
}

func (p ActorPatch) Apply(actor *Actor) {
	if p.Name != nil {
		actor.Name = p.Name
	}
	if p.Gender != nil {
		actor.Gender = p.Gender
	}
	if p.DateOfBirth != nil {
		actor.DateOfBirth = p.DateOfBirth
	}
	if p.PlayID != nil {
		actor.PlayID = p.PlayID
	}
}

type DirectorPatch struct {
	Name   *string
	PlayID *int64
}

func (p DirectorPatch) Apply(director *Director) {
	if p.Name != nil {
		director.Name = p.Name
	}
	if p.PlayID != nil {
		director.PlayID = p.PlayID
	}
}

type ShowTimePatch struct {
	DateAndTime *time.Time
	PlayID      *int64
}

func (p ShowTimePatch) Apply(showtime *ShowTime) {
	if p.DateAndTime != nil {
		showtime.DateAndTime = p.DateAndTime
	}
	if p.PlayID != nil {
		showtime.PlayID = p.PlayID
	}
}

type CustomerPatch struct {
	Name        *string
	PhoneNumber *string
	Email       *string
	Address     *string
}

func (p CustomerPatch) Apply(customer *Customer) {
	if p.Name != nil {
		customer.Name = p.Name
	}
	if p.PhoneNumber != nil {
		customer.PhoneNumber = p.PhoneNumber
	}
	if p.Email != nil {
		customer.Email = p.Email
	}
	if p.Address != nil {
		customer.Address = p.Address
	}
}

// TicketPatch can't touch the key: moving a ticket to another seat is delete + create.
type TicketPatch struct {
	TicketNo *string
	Price    *fields.Price
}

func (p TicketPatch) Apply(ticket *Ticket) {
	if p.TicketNo != nil {
		ticket.TicketNo = p.TicketNo
	}
	if p.Price != nil {
		ticket.Price = *p.Price
	}
}
