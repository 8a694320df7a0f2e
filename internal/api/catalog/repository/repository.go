package catalogRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Products:    &productsRepository{q: sqlExecutor, log: r.log},
		Technicians: &techniciansRepository{q: sqlExecutor, log: r.log},
		Salesmen:    &salesmenRepository{q: sqlExecutor, log: r.log},
		Employees:   &employeesRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	Products interface {
		CreateProduct(ctx context.Context, product entity.Product) error
		GetProductByID(ctx context.Context, id string) (entity.Product, error)
		GetAllProducts(ctx context.Context, limit, offset int) ([]entity.Product, int, error)
		UpdateProduct(ctx context.Context, product entity.Product) error
		DeleteProduct(ctx context.Context, id string) error
		SearchProducts(ctx context.Context, query, category string, maxResults int) ([]entity.Product, error)
	}

	Technicians interface {
		CreateTechnician(ctx context.Context, technician entity.Technician) error
		GetTechnicianByID(ctx context.Context, id string) (entity.Technician, error)
		GetAllTechnicians(ctx context.Context, limit, offset int) ([]entity.Technician, int, error)
		UpdateTechnician(ctx context.Context, technician entity.Technician) error
		DeleteTechnician(ctx context.Context, id string) error
		SearchTechnicians(ctx context.Context, speciality string, maxResults int) ([]entity.Technician, error)
	}

	Salesmen interface {
		CreateSalesman(ctx context.Context, salesman entity.Salesman) error
		GetSalesmanByID(ctx context.Context, id string) (entity.Salesman, error)
		GetAllSalesmen(ctx context.Context, limit, offset int) ([]entity.Salesman, int, error)
		UpdateSalesman(ctx context.Context, salesman entity.Salesman) error
		DeleteSalesman(ctx context.Context, id string) error
		SearchSalesmen(ctx context.Context, speciality string, maxResults int) ([]entity.Salesman, error)
	}

	Employees interface {
		CreateEmployee(ctx context.Context, employee entity.Employee) error
		GetEmployeeByID(ctx context.Context, id string) (entity.Employee, error)
		GetAllEmployees(ctx context.Context, limit, offset int) ([]entity.Employee, int, error)
		UpdateEmployee(ctx context.Context, employee entity.Employee) error
		DeleteEmployee(ctx context.Context, id string) error
		SearchEmployees(ctx context.Context, department, position string, maxResults int) ([]entity.Employee, error)
	}

	Commit   func() error
	Rollback func() error
}

type productsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type techniciansRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type salesmenRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type employeesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
