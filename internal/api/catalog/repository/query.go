package catalogRepository

const (
	queryCreateProduct = `
		INSERT INTO products (
			id,
			name,
			category,
			description,
			specifications,
			price,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:category,
			:description,
			:specifications,
			:price,
			:created_at,
			:updated_at
		)
	`

	queryGetProductByID = `
		SELECT
			id,
			name,
			category,
			description,
			specifications,
			price,
			created_at,
			updated_at
		FROM products
		WHERE id = :id
	`

	queryGetAllProducts = `
		SELECT
			id,
			name,
			category,
			description,
			specifications,
			price,
			created_at,
			updated_at
		FROM products
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllProducts = `
		SELECT COUNT(*)
		FROM products
	`

	queryUpdateProduct = `
		UPDATE products
		SET
			name = :name,
			category = :category,
			description = :description,
			specifications = :specifications,
			price = :price,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteProduct = `
		DELETE FROM products
		WHERE id = :id
	`

	querySearchProducts = `
		SELECT
			id,
			name,
			category,
			description,
			specifications,
			price,
			created_at,
			updated_at
		FROM products
		WHERE (name ILIKE :pattern OR description ILIKE :pattern)
		ORDER BY created_at ASC
		LIMIT :limit
	`

	querySearchProductsByCategory = `
		SELECT
			id,
			name,
			category,
			description,
			specifications,
			price,
			created_at,
			updated_at
		FROM products
		WHERE category ILIKE :category_pattern
		  AND (name ILIKE :pattern OR description ILIKE :pattern)
		ORDER BY created_at ASC
		LIMIT :limit
	`

	queryCreateTechnician = `
		INSERT INTO technicians (
			id,
			name,
			speciality,
			contact,
			email,
			experience_years,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:speciality,
			:contact,
			:email,
			:experience_years,
			:created_at,
			:updated_at
		)
	`

	queryGetTechnicianByID = `
		SELECT
			id,
			name,
			speciality,
			contact,
			email,
			experience_years,
			created_at,
			updated_at
		FROM technicians
		WHERE id = :id
	`

	queryGetAllTechnicians = `
		SELECT
			id,
			name,
			speciality,
			contact,
			email,
			experience_years,
			created_at,
			updated_at
		FROM technicians
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllTechnicians = `
		SELECT COUNT(*)
		FROM technicians
	`

	queryUpdateTechnician = `
		UPDATE technicians
		SET
			name = :name,
			speciality = :speciality,
			contact = :contact,
			email = :email,
			experience_years = :experience_years,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteTechnician = `
		DELETE FROM technicians
		WHERE id = :id
	`

	queryCreateSalesman = `
		INSERT INTO salesmen (
			id,
			name,
			speciality,
			contact,
			email,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:speciality,
			:contact,
			:email,
			:created_at,
			:updated_at
		)
	`

	queryGetSalesmanByID = `
		SELECT
			id,
			name,
			speciality,
			contact,
			email,
			created_at,
			updated_at
		FROM salesmen
		WHERE id = :id
	`

	queryGetAllSalesmen = `
		SELECT
			id,
			name,
			speciality,
			contact,
			email,
			created_at,
			updated_at
		FROM salesmen
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllSalesmen = `
		SELECT COUNT(*)
		FROM salesmen
	`

	queryUpdateSalesman = `
		UPDATE salesmen
		SET
			name = :name,
			speciality = :speciality,
			contact = :contact,
			email = :email,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteSalesman = `
		DELETE FROM salesmen
		WHERE id = :id
	`

	queryCreateEmployee = `
		INSERT INTO employees (
			id,
			name,
			position,
			department,
			contact,
			email,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:position,
			:department,
			:contact,
			:email,
			:created_at,
			:updated_at
		)
	`

	queryGetEmployeeByID = `
		SELECT
			id,
			name,
			position,
			department,
			contact,
			email,
			created_at,
			updated_at
		FROM employees
		WHERE id = :id
	`

	queryGetAllEmployees = `
		SELECT
			id,
			name,
			position,
			department,
			contact,
			email,
			created_at,
			updated_at
		FROM employees
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllEmployees = `
		SELECT COUNT(*)
		FROM employees
	`

	queryUpdateEmployee = `
		UPDATE employees
		SET
			name = :name,
			position = :position,
			department = :department,
			contact = :contact,
			email = :email,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteEmployee = `
		DELETE FROM employees
		WHERE id = :id
	`

	querySearchTechnicians = `
		SELECT
			id,
			name,
			speciality,
			contact,
			email,
			experience_years
		FROM technicians
		WHERE (:speciality_pattern = '%%' OR speciality ILIKE :speciality_pattern)
		ORDER BY created_at ASC
		LIMIT :limit
	`

	querySearchSalesmen = `
		SELECT
			id,
			name,
			speciality,
			contact,
			email
		FROM salesmen
		WHERE (:speciality_pattern = '%%' OR speciality ILIKE :speciality_pattern)
		ORDER BY created_at ASC
		LIMIT :limit
	`

	querySearchEmployees = `
		SELECT
			id,
			name,
			position,
			department,
			contact,
			email
		FROM employees
		WHERE (:department_pattern = '%%' OR department ILIKE :department_pattern)
		  AND (:position_pattern = '%%' OR position ILIKE :position_pattern)
		ORDER BY created_at ASC
		LIMIT :limit
	`
)
