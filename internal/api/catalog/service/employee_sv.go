package catalogService

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

func (s *catalogService) CreateEmployee(ctx context.Context, req catalog.CreateEmployeeRequest) (entity.Employee, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Employee{}, err
	}

	employeeID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Employee{}, err
	}

	now := time.Now()
	employee := entity.Employee{
		ID:         employeeID,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Contact:    req.Contact,
		Email:      req.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := repo.Employees.CreateEmployee(ctx, employee); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create employee")
		return entity.Employee{}, catalog.ErrCreateEmployee
	}

	return employee, nil
}

func (s *catalogService) GetEmployeeByID(ctx context.Context, id string) (entity.Employee, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Employee{}, err
	}

	return repo.Employees.GetEmployeeByID(ctx, id)
}

func (s *catalogService) GetAllEmployees(ctx context.Context, page, limit int) (*catalog.EmployeeListResponse, error) {
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

	employees, total, err := repo.Employees.GetAllEmployees(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &catalog.EmployeeListResponse{
		Employees: make([]catalog.EmployeeResponse, 0, len(employees)),
		Total:     total,
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, catalog.EmployeeResponse{
			ID:         e.ID,
			Name:       e.Name,
			Position:   e.Position,
			Department: e.Department,
			Contact:    e.Contact,
			Email:      e.Email,
			CreatedAt:  e.CreatedAt,
			UpdatedAt:  e.UpdatedAt,
		})
	}

	return resp, nil
}

func (s *catalogService) UpdateEmployee(ctx context.Context, id string, req catalog.UpdateEmployeeRequest) error {
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

	existing, err := repo.Employees.GetEmployeeByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Position != "" {
		existing.Position = req.Position
	}
	if req.Department != "" {
		existing.Department = req.Department
	}
	if req.Contact != "" {
		existing.Contact = req.Contact
	}
	if req.Email != "" {
		existing.Email = req.Email
	}
	existing.UpdatedAt = time.Now()

	if err := repo.Employees.UpdateEmployee(ctx, existing); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update employee")
		return catalog.ErrUpdateEmployee
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return catalog.ErrUpdateEmployee
	}

	return nil
}

func (s *catalogService) DeleteEmployee(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Employees.DeleteEmployee(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to delete employee")
		return err
	}

	return nil
}
