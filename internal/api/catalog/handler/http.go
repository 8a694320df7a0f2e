package catalogHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	catalogService "metro-chatbot/internal/api/catalog/service"
	"metro-chatbot/internal/middleware"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	products := srv.Group("/products")

	products.Post("/", h.CreateProduct)
	products.Get("", h.GetAllProducts)
	products.Get("/:id", h.GetProductByID)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)

	technicians := srv.Group("/technicians")

	technicians.Post("/", h.CreateTechnician)
	technicians.Get("", h.GetAllTechnicians)
	technicians.Get("/:id", h.GetTechnicianByID)
	technicians.Put("/:id", h.UpdateTechnician)
	technicians.Delete("/:id", h.DeleteTechnician)

	salesmen := srv.Group("/salesmen")

	salesmen.Post("/", h.CreateSalesman)
	salesmen.Get("", h.GetAllSalesmen)
	salesmen.Get("/:id", h.GetSalesmanByID)
	salesmen.Put("/:id", h.UpdateSalesman)
	salesmen.Delete("/:id", h.DeleteSalesman)

	employees := srv.Group("/employees")

	employees.Post("/", h.CreateEmployee)
	employees.Get("", h.GetAllEmployees)
	employees.Get("/:id", h.GetEmployeeByID)
	employees.Put("/:id", h.UpdateEmployee)
	employees.Delete("/:id", h.DeleteEmployee)
}
