package catalog

import "time"

type CreateProductRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=256"`
	Category       string  `json:"category" validate:"required"`
	Description    string  `json:"description" validate:"omitempty"`
	Specifications string  `json:"specifications" validate:"omitempty"`
	Price          float64 `json:"price" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name           string  `json:"name" validate:"omitempty,min=2,max=256"`
	Category       string  `json:"category" validate:"omitempty"`
	Description    string  `json:"description" validate:"omitempty"`
	Specifications string  `json:"specifications" validate:"omitempty"`
	Price          float64 `json:"price" validate:"gte=0"`
}

type ProductResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	Specifications string    `json:"specifications"`
	Price          float64   `json:"price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type CreateTechnicianRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=256"`
	Speciality      string `json:"speciality" validate:"required"`
	Contact         string `json:"contact" validate:"omitempty,max=32"`
	Email           string `json:"email" validate:"omitempty,email"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0,lte=80"`
}

type UpdateTechnicianRequest struct {
	Name            string `json:"name" validate:"omitempty,min=2,max=256"`
	Speciality      string `json:"speciality" validate:"omitempty"`
	Contact         string `json:"contact" validate:"omitempty,max=32"`
	Email           string `json:"email" validate:"omitempty,email"`
	ExperienceYears int    `json:"experience_years" validate:"gte=0,lte=80"`
}

type TechnicianResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Speciality      string    `json:"speciality"`
	Contact         string    `json:"contact"`
	Email           string    `json:"email"`
	ExperienceYears int       `json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TechnicianListResponse struct {
	Technicians []TechnicianResponse `json:"technicians"`
	Total       int                  `json:"total"`
}

type CreateSalesmanRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=256"`
	Speciality string `json:"speciality" validate:"required"`
	Contact    string `json:"contact" validate:"omitempty,max=32"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type UpdateSalesmanRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=256"`
	Speciality string `json:"speciality" validate:"omitempty"`
	Contact    string `json:"contact" validate:"omitempty,max=32"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type SalesmanResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Speciality string    `json:"speciality"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SalesmanListResponse struct {
	Salesmen []SalesmanResponse `json:"salesmen"`
	Total    int                `json:"total"`
}

type CreateEmployeeRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=256"`
	Position   string `json:"position" validate:"required"`
	Department string `json:"department" validate:"required"`
	Contact    string `json:"contact" validate:"omitempty,max=32"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type UpdateEmployeeRequest struct {
	Name       string `json:"name" validate:"omitempty,min=2,max=256"`
	Position   string `json:"position" validate:"omitempty"`
	Department string `json:"department" validate:"omitempty"`
	Contact    string `json:"contact" validate:"omitempty,max=32"`
	Email      string `json:"email" validate:"omitempty,email"`
}

type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}

// ProductCard is the recommendation shape embedded in chat replies.
type ProductCard struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Description    string  `json:"description"`
	Specifications string  `json:"specifications"`
	Price          float64 `json:"price"`
}

type TechnicianCard struct {
	Name            string `json:"name"`
	Speciality      string `json:"speciality"`
	Contact         string `json:"contact"`
	Email           string `json:"email"`
	ExperienceYears string `json:"experience_years"`
}

type SalesmanCard struct {
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
}

type EmployeeCard struct {
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
}
