package catalogService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

// The search methods back chat recommendations. They bound their result
// sets and return empty slices rather than errors when nothing matches.

func (s *catalogService) SearchProducts(ctx context.Context, query, category string) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Products.SearchProducts(ctx, query, category, maxProductResults)
}

func (s *catalogService) SearchTechnicians(ctx context.Context, speciality string) ([]entity.Technician, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Technicians.SearchTechnicians(ctx, speciality, maxStaffResults)
}

func (s *catalogService) SearchSalesmen(ctx context.Context, speciality string) ([]entity.Salesman, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Salesmen.SearchSalesmen(ctx, speciality, maxStaffResults)
}

func (s *catalogService) SearchEmployees(ctx context.Context, department, position string) ([]entity.Employee, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	return repo.Employees.SearchEmployees(ctx, department, position, maxStaffResults)
}
