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

type SalesmanDB struct {
	ID         sql.NullString `db:"id"`
	Name       sql.NullString `db:"name"`
	Speciality sql.NullString `db:"speciality"`
	Contact    sql.NullString `db:"contact"`
	Email      sql.NullString `db:"email"`
	CreatedAt  sql.NullTime   `db:"created_at"`
	UpdatedAt  sql.NullTime   `db:"updated_at"`
}

func (r *salesmenRepository) makeSalesman(s SalesmanDB) entity.Salesman {
	return entity.Salesman{
		ID:         s.ID.String,
		Name:       s.Name.String,
		Speciality: s.Speciality.String,
		Contact:    s.Contact.String,
		Email:      s.Email.String,
		CreatedAt:  s.CreatedAt.Time,
		UpdatedAt:  s.UpdatedAt.Time,
	}
}

func (r *salesmenRepository) CreateSalesman(ctx context.Context, salesman entity.Salesman) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         salesman.ID,
		"name":       salesman.Name,
		"speciality": salesman.Speciality,
		"contact":    salesman.Contact,
		"email":      salesman.Email,
		"created_at": salesman.CreatedAt,
		"updated_at": salesman.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateSalesman, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateSalesman named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating salesman")
		return err
	}

	return nil
}

func (r *salesmenRepository) GetSalesmanByID(ctx context.Context, id string) (entity.Salesman, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var salesman SalesmanDB

	query, args, err := sqlx.Named(queryGetSalesmanByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSalesmanByID named query preparation err")
		return entity.Salesman{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&salesman); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Salesman{}, catalog.ErrSalesmanNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSalesmanByID execution err")
		return entity.Salesman{}, err
	}

	return r.makeSalesman(salesman), nil
}

func (r *salesmenRepository) GetAllSalesmen(ctx context.Context, limit, offset int) ([]entity.Salesman, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var salesmanList []SalesmanDB
	var total int

	countQuery := r.q.Rebind(queryCountAllSalesmen)
	if err := r.q.QueryRowxContext(ctx, countQuery).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllSalesmen execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(queryGetAllSalesmen, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSalesmen named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &salesmanList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSalesmen execution err")
		return nil, 0, err
	}

	salesmen := make([]entity.Salesman, 0, len(salesmanList))
	for _, salesmanDB := range salesmanList {
		salesmen = append(salesmen, r.makeSalesman(salesmanDB))
	}

	return salesmen, total, nil
}

func (r *salesmenRepository) UpdateSalesman(ctx context.Context, salesman entity.Salesman) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         salesman.ID,
		"name":       salesman.Name,
		"speciality": salesman.Speciality,
		"contact":    salesman.Contact,
		"email":      salesman.Email,
		"updated_at": salesman.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateSalesman, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSalesman named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating salesman")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrSalesmanNotFound
	}

	return nil
}

func (r *salesmenRepository) DeleteSalesman(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteSalesman, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSalesman named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting salesman")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrSalesmanNotFound
	}

	return nil
}

func (r *salesmenRepository) SearchSalesmen(ctx context.Context, speciality string, maxResults int) ([]entity.Salesman, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var salesmanList []SalesmanDB

	argsKV := map[string]interface{}{
		"speciality_pattern": "%" + speciality + "%",
		"limit":              maxResults,
	}

	query, args, err := sqlx.Named(querySearchSalesmen, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchSalesmen named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &salesmanList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchSalesmen execution err")
		return nil, err
	}

	salesmen := make([]entity.Salesman, 0, len(salesmanList))
	for _, salesmanDB := range salesmanList {
		salesmen = append(salesmen, r.makeSalesman(salesmanDB))
	}

	return salesmen, nil
}
