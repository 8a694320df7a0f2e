package catalogService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

func (s *catalogService) CreateSalesman(ctx context.Context, req catalog.CreateSalesmanRequest) (entity.Salesman, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Salesman{}, err
	}

	salesmanID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Salesman{}, err
	}

	now := time.Now()
	salesman := entity.Salesman{
		ID:         salesmanID,
		Name:       req.Name,
		Speciality: req.Speciality,
		Contact:    req.Contact,
		Email:      req.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := repo.Salesmen.CreateSalesman(ctx, salesman); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create salesman")
		return entity.Salesman{}, catalog.ErrCreateSalesman
	}

	return salesman, nil
}

func (s *catalogService) GetSalesmanByID(ctx context.Context, id string) (entity.Salesman, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Salesman{}, err
	}

	return repo.Salesmen.GetSalesmanByID(ctx, id)
}

func (s *catalogService) GetAllSalesmen(ctx context.Context, page, limit int) (*catalog.SalesmanListResponse, error) {
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

	salesmen, total, err := repo.Salesmen.GetAllSalesmen(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &catalog.SalesmanListResponse{
		Salesmen: make([]catalog.SalesmanResponse, 0, len(salesmen)),
		Total:    total,
	}
	for _, sm := range salesmen {
		resp.Salesmen = append(resp.Salesmen, catalog.SalesmanResponse{
			ID:         sm.ID,
			Name:       sm.Name,
			Speciality: sm.Speciality,
			Contact:    sm.Contact,
			Email:      sm.Email,
			CreatedAt:  sm.CreatedAt,
			UpdatedAt:  sm.UpdatedAt,
		})
	}

	return resp, nil
}

func (s *catalogService) UpdateSalesman(ctx context.Context, id string, req catalog.UpdateSalesmanRequest) error {
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

	existing, err := repo.Salesmen.GetSalesmanByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Speciality != "" {
		existing.Speciality = req.Speciality
	}
	if req.Contact != "" {
		existing.Contact = req.Contact
	}
	if req.Email != "" {
		existing.Email = req.Email
	}
	existing.UpdatedAt = time.Now()

	if err := repo.Salesmen.UpdateSalesman(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update salesman")
		return catalog.ErrUpdateSalesman
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrUpdateSalesman
	}

	return nil
}

func (s *catalogService) DeleteSalesman(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Salesmen.DeleteSalesman(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete salesman")
		return err
	}

	return nil
}
