package catalogService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

func (s *catalogService) CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Product{}, err
	}

	productID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Product{}, err
	}

	now := time.Now()
	product := entity.Product{
		ID:             productID,
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Specifications: req.Specifications,
		Price:          req.Price,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repo.Products.CreateProduct(ctx, product); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create product")
		return entity.Product{}, catalog.ErrCreateProduct
	}

	return product, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Product{}, err
	}

	return repo.Products.GetProductByID(ctx, id)
}

func (s *catalogService) GetAllProducts(ctx context.Context, page, limit int) (*catalog.ProductListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	limit, offset := pageWindow(page, limit)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	products, total, err := repo.Products.GetAllProducts(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &catalog.ProductListResponse{
		Products: make([]catalog.ProductResponse, 0, len(products)),
		Total:    total,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, catalog.ProductResponse{
			ID:             p.ID,
			Name:           p.Name,
			Category:       p.Category,
			Description:    p.Description,
			Specifications: p.Specifications,
			Price:          p.Price,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}

	return resp, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req catalog.UpdateProductRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Products.GetProductByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Category != "" {
		existing.Category = req.Category
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Specifications != "" {
		existing.Specifications = req.Specifications
	}
	if req.Price > 0 {
		existing.Price = req.Price
	}
	existing.UpdatedAt = time.Now()

	if err := repo.Products.UpdateProduct(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update product")
		return catalog.ErrUpdateProduct
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrUpdateProduct
	}

	return nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Products.DeleteProduct(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete product")
		return err
	}

	return nil
}
