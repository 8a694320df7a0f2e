package catalogRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"metro-chatbot/internal/api/catalog"
	"metro-chatbot/internal/entity"
	contextPkg "metro-chatbot/pkg/context"
)

type ProductDB struct {
	ID             sql.NullString  `db:"id"`
	Name           sql.NullString  `db:"name"`
	Category       sql.NullString  `db:"category"`
	Description    sql.NullString  `db:"description"`
	Specifications sql.NullString  `db:"specifications"`
	Price          sql.NullFloat64 `db:"price"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

func (r *productsRepository) makeProduct(p ProductDB) entity.Product {
	return entity.Product{
		ID:             p.ID.String,
		Name:           p.Name.String,
		Category:       p.Category.String,
		Description:    p.Description.String,
		Specifications: p.Specifications.String,
		Price:          p.Price.Float64,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *productsRepository) CreateProduct(ctx context.Context, product entity.Product) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":             product.ID,
		"name":           product.Name,
		"category":       product.Category,
		"description":    product.Description,
		"specifications": product.Specifications,
		"price":          product.Price,
		"created_at":     product.CreatedAt,
		"updated_at":     product.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateProduct")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating product")
		return err
	}

	return nil
}

func (r *productsRepository) GetProductByID(ctx context.Context, id string) (entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var product ProductDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetProductByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByID named query preparation err")
		return entity.Product{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&product); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetProductByID no rows found")
			return entity.Product{}, catalog.ErrProductNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetProductByID execution err")
		return entity.Product{}, err
	}

	return r.makeProduct(product), nil
}

func (r *productsRepository) GetAllProducts(ctx context.Context, limit, offset int) ([]entity.Product, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productList []ProductDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountAllProducts, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllProducts named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllProducts execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllProducts, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProducts named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &productList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllProducts execution err")
		return nil, 0, err
	}

	var products []entity.Product
	for _, productDB := range productList {
		products = append(products, r.makeProduct(productDB))
	}

	return products, total, nil
}

func (r *productsRepository) UpdateProduct(ctx context.Context, product entity.Product) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":             product.ID,
		"name":           product.Name,
		"category":       product.Category,
		"description":    product.Description,
		"specifications": product.Specifications,
		"price":          product.Price,
		"updated_at":     product.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProduct named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating product")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrProductNotFound
	}

	return nil
}

func (r *productsRepository) DeleteProduct(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteProduct, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteProduct named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting product")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return catalog.ErrProductNotFound
	}

	return nil
}

func (r *productsRepository) SearchProducts(ctx context.Context, searchQuery, category string, maxResults int) ([]entity.Product, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var productList []ProductDB

	argsKV := map[string]interface{}{
		"pattern": "%" + searchQuery + "%",
		"limit":   maxResults,
	}

	dbQuery := querySearchProducts
	if category != "" {
		dbQuery = querySearchProductsByCategory
		argsKV["category_pattern"] = "%" + category + "%"
	}

	query, args, err := sqlx.Named(dbQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchProducts named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &productList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchProducts execution err")
		return nil, err
	}

	products := make([]entity.Product, 0, len(productList))
	for _, productDB := range productList {
		products = append(products, r.makeProduct(productDB))
	}

	return products, nil
}
