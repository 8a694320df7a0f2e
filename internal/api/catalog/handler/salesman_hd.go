package catalogHandler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
	"metro-chatbot/pkg/handlerUtil"
)

func makeSalesmanResponse(sm entity.Salesman) catalog.SalesmanResponse {
	return catalog.SalesmanResponse{
		ID:         sm.ID,
		Name:       sm.Name,
		Speciality: sm.Speciality,
		Contact:    sm.Contact,
		Email:      sm.Email,
		CreatedAt:  sm.CreatedAt,
		UpdatedAt:  sm.UpdatedAt,
	}
}

func (h *CatalogHandler) CreateSalesman(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req catalog.CreateSalesmanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	salesman, err := h.catalogService.CreateSalesman(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_salesman")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, makeSalesmanResponse(salesman))
	}
}

func (h *CatalogHandler) GetSalesmanByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("salesman ID is required"), ctx.Path())
	}

	salesman, err := h.catalogService.GetSalesmanByID(c, id)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_salesman")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeSalesmanResponse(salesman))
	}
}

func (h *CatalogHandler) GetAllSalesmen(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	resp, err := h.catalogService.GetAllSalesmen(c, page, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_salesmen")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func (h *CatalogHandler) UpdateSalesman(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("salesman ID is required"), ctx.Path())
	}

	var req catalog.UpdateSalesmanRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.catalogService.UpdateSalesman(c, id, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_salesman")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Salesman updated successfully",
		})
	}
}

func (h *CatalogHandler) DeleteSalesman(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("salesman ID is required"), ctx.Path())
	}

	if err := h.catalogService.DeleteSalesman(c, id); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_salesman")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Salesman deleted successfully",
		})
	}
}
