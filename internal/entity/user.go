package entity

import "time"

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	MobileNumber string    `db:"mobile_number"`
	CreatedAt    time.Time `db:"created_at"`
}
