package entity

import "time"

type Product struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Category       string    `db:"category"`
	Description    string    `db:"description"`
	Specifications string    `db:"specifications"`
	Price          float64   `db:"price"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Technician struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Speciality      string    `db:"speciality"`
	Contact         string    `db:"contact"`
	Email           string    `db:"email"`
	ExperienceYears int       `db:"experience_years"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Salesman struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Speciality string    `db:"speciality"`
	Contact    string    `db:"contact"`
	Email      string    `db:"email"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type Employee struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Position   string    `db:"position"`
	Department string    `db:"department"`
	Contact    string    `db:"contact"`
	Email      string    `db:"email"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
