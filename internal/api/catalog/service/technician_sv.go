package catalogService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

func (s *catalogService) CreateTechnician(ctx context.Context, req catalog.CreateTechnicianRequest) (entity.Technician, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Technician{}, err
	}

	technicianID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Technician{}, err
	}

	now := time.Now()
	technician := entity.Technician{
		ID:              technicianID,
		Name:            req.Name,
		Speciality:      req.Speciality,
		Contact:         req.Contact,
		Email:           req.Email,
		ExperienceYears: req.ExperienceYears,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := repo.Technicians.CreateTechnician(ctx, technician); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create technician")
		return entity.Technician{}, catalog.ErrCreateTechnician
	}

	return technician, nil
}

func (s *catalogService) GetTechnicianByID(ctx context.Context, id string) (entity.Technician, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Technician{}, err
	}

	return repo.Technicians.GetTechnicianByID(ctx, id)
}

func (s *catalogService) GetAllTechnicians(ctx context.Context, page, limit int) (*catalog.TechnicianListResponse, error) {
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

	technicians, total, err := repo.Technicians.GetAllTechnicians(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &catalog.TechnicianListResponse{
		Technicians: make([]catalog.TechnicianResponse, 0, len(technicians)),
		Total:       total,
	}
	for _, t := range technicians {
		resp.Technicians = append(resp.Technicians, catalog.TechnicianResponse{
			ID:              t.ID,
			Name:            t.Name,
			Speciality:      t.Speciality,
			Contact:         t.Contact,
			Email:           t.Email,
			ExperienceYears: t.ExperienceYears,
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
		})
	}

	return resp, nil
}

func (s *catalogService) UpdateTechnician(ctx context.Context, id string, req catalog.UpdateTechnicianRequest) error {
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

	existing, err := repo.Technicians.GetTechnicianByID(ctx, id)
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
	if req.ExperienceYears > 0 {
		existing.ExperienceYears = req.ExperienceYears
	}
	existing.UpdatedAt = time.Now()

	if err := repo.Technicians.UpdateTechnician(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update technician")
		return catalog.ErrUpdateTechnician
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrUpdateTechnician
	}

	return nil
}

func (s *catalogService) DeleteTechnician(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Technicians.DeleteTechnician(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete technician")
		return err
	}

	return nil
}
