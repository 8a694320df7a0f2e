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

type TechnicianDB struct {
	ID              sql.NullString `db:"id"`
	Name            sql.NullString `db:"name"`
	Speciality      sql.NullString `db:"speciality"`
	Contact         sql.NullString `db:"contact"`
	Email           sql.NullString `db:"email"`
	ExperienceYears sql.NullInt64  `db:"experience_years"`
	CreatedAt       sql.NullTime   `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

func (r *techniciansRepository) makeTechnician(t TechnicianDB) entity.Technician {
	return entity.Technician{
		ID:              t.ID.String,
		Name:            t.Name.String,
		Speciality:      t.Speciality.String,
		Contact:         t.Contact.String,
		Email:           t.Email.String,
		ExperienceYears: int(t.ExperienceYears.Int64),
		CreatedAt:       t.CreatedAt.Time,
		UpdatedAt:       t.UpdatedAt.Time,
	}
}

func (r *techniciansRepository) CreateTechnician(ctx context.Context, technician entity.Technician) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               technician.ID,
		"name":             technician.Name,
		"speciality":       technician.Speciality,
		"contact":          technician.Contact,
		"email":            technician.Email,
		"experience_years": technician.ExperienceYears,
		"created_at":       technician.CreatedAt,
		"updated_at":       technician.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTechnician, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateTechnician named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating technician")
		return err
	}

	return nil
}

func (r *techniciansRepository) GetTechnicianByID(ctx context.Context, id string) (entity.Technician, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var technician TechnicianDB

	query, args, err := sqlx.Named(queryGetTechnicianByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTechnicianByID named query preparation err")
		return entity.Technician{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&technician); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Technician{}, catalog.ErrTechnicianNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTechnicianByID execution err")
		return entity.Technician{}, err
	}

	return r.makeTechnician(technician), nil
}

func (r *techniciansRepository) GetAllTechnicians(ctx context.Context, limit, offset int) ([]entity.Technician, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var technicianList []TechnicianDB
	var total int

	countQuery := r.q.Rebind(queryCountAllTechnicians)
	if err := r.q.QueryRowxContext(ctx, countQuery).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllTechnicians execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(queryGetAllTechnicians, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTechnicians named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &technicianList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllTechnicians execution err")
		return nil, 0, err
	}

	technicians := make([]entity.Technician, 0, len(technicianList))
	for _, technicianDB := range technicianList {
		technicians = append(technicians, r.makeTechnician(technicianDB))
	}

	return technicians, total, nil
}

func (r *techniciansRepository) UpdateTechnician(ctx context.Context, technician entity.Technician) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               technician.ID,
		"name":             technician.Name,
		"speciality":       technician.Speciality,
		"contact":          technician.Contact,
		"email":            technician.Email,
		"experience_years": technician.ExperienceYears,
		"updated_at":       technician.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateTechnician, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTechnician named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating technician")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrTechnicianNotFound
	}

	return nil
}

func (r *techniciansRepository) DeleteTechnician(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteTechnician, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTechnician named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting technician")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrTechnicianNotFound
	}

	return nil
}

func (r *techniciansRepository) SearchTechnicians(ctx context.Context, speciality string, maxResults int) ([]entity.Technician, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var technicianList []TechnicianDB

	argsKV := map[string]interface{}{
		"speciality_pattern": "%" + speciality + "%",
		"limit":              maxResults,
	}

	query, args, err := sqlx.Named(querySearchTechnicians, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchTechnicians named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &technicianList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchTechnicians execution err")
		return nil, err
	}

	technicians := make([]entity.Technician, 0, len(technicianList))
	for _, technicianDB := range technicianList {
		technicians = append(technicians, r.makeTechnician(technicianDB))
	}

	return technicians, nil
}
