package catalogService

import (
	"context"

	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/catalog"
	catalogRepository "metro-chatbot/internal/api/catalog/repository"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/utils"
)

type ICatalogService interface {
	CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (entity.Product, error)
	GetProductByID(ctx context.Context, id string) (entity.Product, error)
	GetAllProducts(ctx context.Context, page, limit int) (*catalog.ProductListResponse, error)
	UpdateProduct(ctx context.Context, id string, req catalog.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, id string) error

	CreateTechnician(ctx context.Context, req catalog.CreateTechnicianRequest) (entity.Technician, error)
	GetTechnicianByID(ctx context.Context, id string) (entity.Technician, error)
	GetAllTechnicians(ctx context.Context, page, limit int) (*catalog.TechnicianListResponse, error)
	UpdateTechnician(ctx context.Context, id string, req catalog.UpdateTechnicianRequest) error
	DeleteTechnician(ctx context.Context, id string) error

	CreateSalesman(ctx context.Context, req catalog.CreateSalesmanRequest) (entity.Salesman, error)
	GetSalesmanByID(ctx context.Context, id string) (entity.Salesman, error)
	GetAllSalesmen(ctx context.Context, page, limit int) (*catalog.SalesmanListResponse, error)
	UpdateSalesman(ctx context.Context, id string, req catalog.UpdateSalesmanRequest) error
	DeleteSalesman(ctx context.Context, id string) error

	CreateEmployee(ctx context.Context, req catalog.CreateEmployeeRequest) (entity.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (entity.Employee, error)
	GetAllEmployees(ctx context.Context, page, limit int) (*catalog.EmployeeListResponse, error)
	UpdateEmployee(ctx context.Context, id string, req catalog.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, id string) error

	SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error)
	SearchTechnicians(ctx context.Context, speciality string) ([]entity.Technician, error)
	SearchSalesmen(ctx context.Context, speciality string) ([]entity.Salesman, error)
	SearchEmployees(ctx context.Context, department, position string) ([]entity.Employee, error)
}

// pageWindow clamps pagination inputs and returns the SQL limit/offset.
func pageWindow(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return limit, (page - 1) * limit
}

const (
	maxProductResults = 5
	maxStaffResults   = 3
)

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	catalogRepo catalogRepository.Repository,
	utils utils.IUtils,
) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: catalogRepo,
		utils:       utils,
	}
}
