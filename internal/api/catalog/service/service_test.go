package catalogService

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"metro-chatbot/internal/api/catalog"
	catalogRepository "metro-chatbot/internal/api/catalog/repository"
	"metro-chatbot/internal/entity"
	"metro-chatbot/pkg/utils"
)

type fakeProductStore struct {
	createFn  func(ctx context.Context, product entity.Product) error
	getByIDFn func(ctx context.Context, id string) (entity.Product, error)
	getAllFn  func(ctx context.Context, limit, offset int) ([]entity.Product, int, error)
	updateFn  func(ctx context.Context, product entity.Product) error
	deleteFn  func(ctx context.Context, id string) error
	searchFn  func(ctx context.Context, query, category string, maxResults int) ([]entity.Product, error)
}

func (f *fakeProductStore) CreateProduct(ctx context.Context, product entity.Product) error {
	if f.createFn != nil {
		return f.createFn(ctx, product)
	}
	return nil
}

func (f *fakeProductStore) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return entity.Product{}, nil
}

func (f *fakeProductStore) GetAllProducts(ctx context.Context, limit, offset int) ([]entity.Product, int, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (f *fakeProductStore) UpdateProduct(ctx context.Context, product entity.Product) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, product)
	}
	return nil
}

func (f *fakeProductStore) DeleteProduct(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeProductStore) SearchProducts(ctx context.Context, query, category string, maxResults int) ([]entity.Product, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, query, category, maxResults)
	}
	return nil, nil
}

type fakeTechnicianStore struct {
	createFn  func(ctx context.Context, technician entity.Technician) error
	getByIDFn func(ctx context.Context, id string) (entity.Technician, error)
	getAllFn  func(ctx context.Context, limit, offset int) ([]entity.Technician, int, error)
	updateFn  func(ctx context.Context, technician entity.Technician) error
	deleteFn  func(ctx context.Context, id string) error
	searchFn  func(ctx context.Context, speciality string, maxResults int) ([]entity.Technician, error)
}

func (f *fakeTechnicianStore) CreateTechnician(ctx context.Context, technician entity.Technician) error {
	if f.createFn != nil {
		return f.createFn(ctx, technician)
	}
	return nil
}

func (f *fakeTechnicianStore) GetTechnicianByID(ctx context.Context, id string) (entity.Technician, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return entity.Technician{}, nil
}

func (f *fakeTechnicianStore) GetAllTechnicians(ctx context.Context, limit, offset int) ([]entity.Technician, int, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (f *fakeTechnicianStore) UpdateTechnician(ctx context.Context, technician entity.Technician) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, technician)
	}
	return nil
}

func (f *fakeTechnicianStore) DeleteTechnician(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeTechnicianStore) SearchTechnicians(ctx context.Context, speciality string, maxResults int) ([]entity.Technician, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, speciality, maxResults)
	}
	return nil, nil
}

type fakeSalesmanStore struct {
	createFn  func(ctx context.Context, salesman entity.Salesman) error
	getByIDFn func(ctx context.Context, id string) (entity.Salesman, error)
	getAllFn  func(ctx context.Context, limit, offset int) ([]entity.Salesman, int, error)
	updateFn  func(ctx context.Context, salesman entity.Salesman) error
	deleteFn  func(ctx context.Context, id string) error
	searchFn  func(ctx context.Context, speciality string, maxResults int) ([]entity.Salesman, error)
}

func (f *fakeSalesmanStore) CreateSalesman(ctx context.Context, salesman entity.Salesman) error {
	if f.createFn != nil {
		return f.createFn(ctx, salesman)
	}
	return nil
}

func (f *fakeSalesmanStore) GetSalesmanByID(ctx context.Context, id string) (entity.Salesman, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return entity.Salesman{}, nil
}

func (f *fakeSalesmanStore) GetAllSalesmen(ctx context.Context, limit, offset int) ([]entity.Salesman, int, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (f *fakeSalesmanStore) UpdateSalesman(ctx context.Context, salesman entity.Salesman) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, salesman)
	}
	return nil
}

func (f *fakeSalesmanStore) DeleteSalesman(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeSalesmanStore) SearchSalesmen(ctx context.Context, speciality string, maxResults int) ([]entity.Salesman, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, speciality, maxResults)
	}
	return nil, nil
}

type fakeEmployeeStore struct {
	createFn  func(ctx context.Context, employee entity.Employee) error
	getByIDFn func(ctx context.Context, id string) (entity.Employee, error)
	getAllFn  func(ctx context.Context, limit, offset int) ([]entity.Employee, int, error)
	updateFn  func(ctx context.Context, employee entity.Employee) error
	deleteFn  func(ctx context.Context, id string) error
	searchFn  func(ctx context.Context, department, position string, maxResults int) ([]entity.Employee, error)
}

func (f *fakeEmployeeStore) CreateEmployee(ctx context.Context, employee entity.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, employee)
	}
	return nil
}

func (f *fakeEmployeeStore) GetEmployeeByID(ctx context.Context, id string) (entity.Employee, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return entity.Employee{}, nil
}

func (f *fakeEmployeeStore) GetAllEmployees(ctx context.Context, limit, offset int) ([]entity.Employee, int, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (f *fakeEmployeeStore) UpdateEmployee(ctx context.Context, employee entity.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, employee)
	}
	return nil
}

func (f *fakeEmployeeStore) DeleteEmployee(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeStore) SearchEmployees(ctx context.Context, department, position string, maxResults int) ([]entity.Employee, error) {
	if f.searchFn != nil {
		return f.searchFn(ctx, department, position, maxResults)
	}
	return nil, nil
}

type fakeCatalogRepo struct {
	products    *fakeProductStore
	technicians *fakeTechnicianStore
	salesmen    *fakeSalesmanStore
	employees   *fakeEmployeeStore
	commits     int
	rollbacks   int
}

func (r *fakeCatalogRepo) NewClient(tx bool) (catalogRepository.Client, error) {
	return catalogRepository.Client{
		Products:    r.products,
		Technicians: r.technicians,
		Salesmen:    r.salesmen,
		Employees:   r.employees,
		Commit: func() error {
			r.commits++
			return nil
		},
		Rollback: func() error {
			r.rollbacks++
			return nil
		},
	}, nil
}

func newCatalogFixture(t *testing.T) (*fakeCatalogRepo, ICatalogService) {
	t.Helper()

	repo := &fakeCatalogRepo{
		products:    &fakeProductStore{},
		technicians: &fakeTechnicianStore{},
		salesmen:    &fakeSalesmanStore{},
		employees:   &fakeEmployeeStore{},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return repo, New(log, repo, utils.New())
}

func TestCreateTechnicianGeneratesIDAndTimestamps(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	var stored entity.Technician
	repo.technicians.createFn = func(ctx context.Context, technician entity.Technician) error {
		stored = technician
		return nil
	}

	created, err := svc.CreateTechnician(context.Background(), catalog.CreateTechnicianRequest{
		Name:            "Agus Wijaya",
		Speciality:      "electrical",
		Contact:         "0812000111",
		ExperienceYears: 7,
	})
	require.NoError(t, err)

	require.NotEmpty(t, stored.ID)
	require.Equal(t, "Agus Wijaya", stored.Name)
	require.Equal(t, "electrical", stored.Speciality)
	require.Equal(t, 7, stored.ExperienceYears)
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, stored.CreatedAt, stored.UpdatedAt)
	require.Equal(t, stored, created)
}

func TestCreateStaffRepoErrorMapsToSentinel(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	dbErr := errors.New("connection reset")
	repo.technicians.createFn = func(ctx context.Context, technician entity.Technician) error { return dbErr }
	repo.salesmen.createFn = func(ctx context.Context, salesman entity.Salesman) error { return dbErr }
	repo.employees.createFn = func(ctx context.Context, employee entity.Employee) error { return dbErr }

	_, err := svc.CreateTechnician(context.Background(), catalog.CreateTechnicianRequest{Name: "Agus", Speciality: "hvac"})
	require.ErrorIs(t, err, catalog.ErrCreateTechnician)

	_, err = svc.CreateSalesman(context.Background(), catalog.CreateSalesmanRequest{Name: "Rina", Speciality: "solar"})
	require.ErrorIs(t, err, catalog.ErrCreateSalesman)

	_, err = svc.CreateEmployee(context.Background(), catalog.CreateEmployeeRequest{Name: "Dewi", Department: "finance", Position: "analyst"})
	require.ErrorIs(t, err, catalog.ErrCreateEmployee)
}

func TestUpdateSalesmanMergesOnlyProvidedFields(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	repo.salesmen.getByIDFn = func(ctx context.Context, id string) (entity.Salesman, error) {
		return entity.Salesman{
			ID:         id,
			Name:       "Rina Hartono",
			Speciality: "solar",
			Contact:    "0812999888",
			Email:      "rina@metro.example",
		}, nil
	}

	var stored entity.Salesman
	repo.salesmen.updateFn = func(ctx context.Context, salesman entity.Salesman) error {
		stored = salesman
		return nil
	}

	err := svc.UpdateSalesman(context.Background(), "sls-1", catalog.UpdateSalesmanRequest{
		Contact: "0813111222",
	})
	require.NoError(t, err)

	require.Equal(t, "sls-1", stored.ID)
	require.Equal(t, "Rina Hartono", stored.Name)
	require.Equal(t, "solar", stored.Speciality)
	require.Equal(t, "0813111222", stored.Contact)
	require.Equal(t, "rina@metro.example", stored.Email)
	require.False(t, stored.UpdatedAt.IsZero())
	require.Equal(t, 1, repo.commits)
}

func TestUpdateEmployeeNotFoundSkipsCommit(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	repo.employees.getByIDFn = func(ctx context.Context, id string) (entity.Employee, error) {
		return entity.Employee{}, catalog.ErrEmployeeNotFound
	}

	err := svc.UpdateEmployee(context.Background(), "missing", catalog.UpdateEmployeeRequest{Name: "Dewi"})
	require.ErrorIs(t, err, catalog.ErrEmployeeNotFound)
	require.Equal(t, 0, repo.commits)
	require.Equal(t, 1, repo.rollbacks)
}

func TestGetAllTechniciansClampsPagination(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	var gotLimit, gotOffset int
	repo.technicians.getAllFn = func(ctx context.Context, limit, offset int) ([]entity.Technician, int, error) {
		gotLimit, gotOffset = limit, offset
		return []entity.Technician{{ID: "tech-1", Name: "Agus"}}, 41, nil
	}

	resp, err := svc.GetAllTechnicians(context.Background(), 0, 500)
	require.NoError(t, err)
	require.Equal(t, 20, gotLimit)
	require.Equal(t, 0, gotOffset)
	require.Equal(t, 41, resp.Total)
	require.Len(t, resp.Technicians, 1)
	require.Equal(t, "Agus", resp.Technicians[0].Name)

	_, err = svc.GetAllTechnicians(context.Background(), 3, 10)
	require.NoError(t, err)
	require.Equal(t, 10, gotLimit)
	require.Equal(t, 20, gotOffset)
}

func TestDeleteSalesmanPropagatesNotFound(t *testing.T) {
	repo, svc := newCatalogFixture(t)

	repo.salesmen.deleteFn = func(ctx context.Context, id string) error {
		return catalog.ErrSalesmanNotFound
	}

	err := svc.DeleteSalesman(context.Background(), "missing")
	require.ErrorIs(t, err, catalog.ErrSalesmanNotFound)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 20, 0},
		{"negative page", -3, 10, 10, 0},
		{"over cap", 1, 500, 20, 0},
		{"second page", 2, 25, 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageWindow(tt.page, tt.limit)
			require.Equal(t, tt.wantLimit, limit)
			require.Equal(t, tt.wantOffset, offset)
		})
	}
}
