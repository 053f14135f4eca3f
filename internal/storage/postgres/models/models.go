package models

import "theatre/ticketing/internal/storage/postgres"

type Models struct {
	Users     *UserModel
	Plays     *PlayModel
	Actors    *ActorModel
	Directors *DirectorModel
	ShowTimes *ShowTimeModel
	Customers *CustomerModel
	Tickets   *TicketModel
}

func New(db *postgres.PostgresDB) *Models {
	return &Models{
		Users:     &UserModel{db.Conn},
		Plays:     &PlayModel{db.Conn},
		Actors:    &ActorModel{db.Conn},
		Directors: &DirectorModel{db.Conn},
		ShowTimes: &ShowTimeModel{db.Conn},
		Customers: &CustomerModel{db.Conn},
		Tickets:   &TicketModel{db.Conn},
	}
}
