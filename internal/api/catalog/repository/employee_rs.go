package catalogRepository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

type EmployeeDB struct {
	ID         sql.NullString `db:"id"`
	Name       sql.NullString `db:"name"`
	Position   sql.NullString `db:"position"`
	Department sql.NullString `db:"department"`
	Contact    sql.NullString `db:"contact"`
	Email      sql.NullString `db:"email"`
	CreatedAt  sql.NullTime   `db:"created_at"`
	UpdatedAt  sql.NullTime   `db:"updated_at"`
}

func (r *employeesRepository) makeEmployee(e EmployeeDB) entity.Employee {
	return entity.Employee{
		ID:         e.ID.String,
		Name:       e.Name.String,
		Position:   e.Position.String,
		Department: e.Department.String,
		Contact:    e.Contact.String,
		Email:      e.Email.String,
		CreatedAt:  e.CreatedAt.Time,
		UpdatedAt:  e.UpdatedAt.Time,
	}
}

func (r *employeesRepository) CreateEmployee(ctx context.Context, employee entity.Employee) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         employee.ID,
		"name":       employee.Name,
		"position":   employee.Position,
		"department": employee.Department,
		"contact":    employee.Contact,
		"email":      employee.Email,
		"created_at": employee.CreatedAt,
		"updated_at": employee.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateEmployee, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateEmployee named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating employee")
		return err
	}

	return nil
}

func (r *employeesRepository) GetEmployeeByID(ctx context.Context, id string) (entity.Employee, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var employee EmployeeDB

	query, args, err := sqlx.Named(queryGetEmployeeByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEmployeeByID named query preparation err")
		return entity.Employee{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Employee{}, catalog.ErrEmployeeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetEmployeeByID execution err")
		return entity.Employee{}, err
	}

	return r.makeEmployee(employee), nil
}

func (r *employeesRepository) GetAllEmployees(ctx context.Context, limit, offset int) ([]entity.Employee, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var employeeList []EmployeeDB
	var total int

	countQuery := r.q.Rebind(queryCountAllEmployees)
	if err := r.q.QueryRowxContext(ctx, countQuery).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllEmployees execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(queryGetAllEmployees, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllEmployees named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &employeeList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllEmployees execution err")
		return nil, 0, err
	}

	employees := make([]entity.Employee, 0, len(employeeList))
	for _, employeeDB := range employeeList {
		employees = append(employees, r.makeEmployee(employeeDB))
	}

	return employees, total, nil
}

func (r *employeesRepository) UpdateEmployee(ctx context.Context, employee entity.Employee) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         employee.ID,
		"name":       employee.Name,
		"position":   employee.Position,
		"department": employee.Department,
		"contact":    employee.Contact,
		"email":      employee.Email,
		"updated_at": employee.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateEmployee, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateEmployee named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating employee")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeesRepository) DeleteEmployee(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteEmployee, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteEmployee named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting employee")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeesRepository) SearchEmployees(ctx context.Context, department, position string, maxResults int) ([]entity.Employee, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var employeeList []EmployeeDB

	argsKV := map[string]interface{}{
		"department_pattern": "%" + department + "%",
		"position_pattern":   "%" + position + "%",
		"limit":              maxResults,
	}

	query, args, err := sqlx.Named(querySearchEmployees, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchEmployees named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &employeeList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchEmployees execution err")
		return nil, err
	}

	employees := make([]entity.Employee, 0, len(employeeList))
	for _, employeeDB := range employeeList {
		employees = append(employees, r.makeEmployee(employeeDB))
	}

	return employees, nil
}
