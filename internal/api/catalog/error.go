package catalog

import (
	"net/http"

	"metro-chatbot/pkg/response"
)

var (
	ErrProductNotFound    = response.NewError(http.StatusNotFound, "product not found")
	ErrTechnicianNotFound = response.NewError(http.StatusNotFound, "technician not found")
	ErrSalesmanNotFound   = response.NewError(http.StatusNotFound, "salesman not found")
	ErrEmployeeNotFound   = response.NewError(http.StatusNotFound, "employee not found")
	ErrCreateProduct      = response.NewError(http.StatusInternalServerError, "failed to create product")
	ErrUpdateProduct      = response.NewError(http.StatusInternalServerError, "failed to update product")
	ErrDeleteProduct      = response.NewError(http.StatusInternalServerError, "failed to delete product")
	ErrCreateTechnician   = response.NewError(http.StatusInternalServerError, "failed to create technician")
	ErrUpdateTechnician   = response.NewError(http.StatusInternalServerError, "failed to update technician")
	ErrCreateSalesman     = response.NewError(http.StatusInternalServerError, "failed to create salesman")
	ErrUpdateSalesman     = response.NewError(http.StatusInternalServerError, "failed to update salesman")
	ErrCreateEmployee     = response.NewError(http.StatusInternalServerError, "failed to create employee")
	ErrUpdateEmployee     = response.NewError(http.StatusInternalServerError, "failed to update employee")
)
