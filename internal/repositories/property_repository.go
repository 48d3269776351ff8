package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"aqarBack/internal/models"
)

type PropertyRepository struct {
	DB *sql.DB
}

const propertyColumns = `p.id, p.user_id, p.name, p.description, p.city, p.price, p.property_type, p.square_meter,
       p.bedrooms, p.bathrooms, p.living_rooms, p.balconies, p.parking_spaces, p.furnished, p.year_built,
       p.is_for_rent, p.is_approved, p.created_at, p.updated_at`

// buildPropertyFilter translates a dynamic search request into WHERE conditions,
// bind parameters and an ORDER BY clause. Absent filters add no condition; the
// approval gate is always appended so only approved listings ever surface here.
// An unrecognized sort key yields an empty ORDER BY (store's natural order).
func buildPropertyFilter(f models.PropertyFilter) (conditions []string, params []interface{}, orderBy string) {
	if f.IsRent != nil {
		conditions = append(conditions, "p.is_for_rent = ?")
		params = append(params, *f.IsRent)
	}
	if f.City != "" {
		conditions = append(conditions, "p.city = ?")
		params = append(params, f.City)
	}
	if f.PropertyType != "" {
		conditions = append(conditions, "p.property_type = ?")
		params = append(params, f.PropertyType)
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "p.price >= ?")
		params = append(params, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "p.price <= ?")
		params = append(params, *f.MaxPrice)
	}
	if f.MinYear != nil {
		conditions = append(conditions, "p.year_built >= ?")
		params = append(params, *f.MinYear)
	}
	if f.MaxYear != nil {
		conditions = append(conditions, "p.year_built <= ?")
		params = append(params, *f.MaxYear)
	}
	if f.Furnished != nil {
		conditions = append(conditions, "p.furnished = ?")
		params = append(params, *f.Furnished)
	}
	if f.ExcludeUserID > 0 {
		conditions = append(conditions, "p.user_id <> ?")
		params = append(params, f.ExcludeUserID)
	}

	conditions = append(conditions, "p.is_approved = TRUE")

	switch f.SortBy {
	case models.SortPriceAsc:
		orderBy = " ORDER BY p.price ASC"
	case models.SortPriceDesc:
		orderBy = " ORDER BY p.price DESC"
	case models.SortDateAsc:
		orderBy = " ORDER BY p.created_at ASC"
	case models.SortDateDesc:
		orderBy = " ORDER BY p.created_at DESC"
	case models.SortYearAsc:
		orderBy = " ORDER BY p.year_built ASC"
	case models.SortYearDesc:
		orderBy = " ORDER BY p.year_built DESC"
	}

	return conditions, params, orderBy
}

func (r *PropertyRepository) GetPropertiesWithFilters(ctx context.Context, f models.PropertyFilter) ([]models.Property, error) {
	conditions, params, orderBy := buildPropertyFilter(f)

	query := "SELECT " + propertyColumns + " FROM properties p"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += orderBy

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProperties(rows)
}

func (r *PropertyRepository) GetApprovedProperties(ctx context.Context) ([]models.Property, error) {
	return r.queryProperties(ctx, "p.is_approved = TRUE", " ORDER BY p.created_at DESC")
}

func (r *PropertyRepository) GetNonApprovedProperties(ctx context.Context) ([]models.Property, error) {
	return r.queryProperties(ctx, "p.is_approved = FALSE", " ORDER BY p.created_at DESC")
}

func (r *PropertyRepository) GetPropertiesByType(ctx context.Context, propertyType string) ([]models.Property, error) {
	return r.queryProperties(ctx, "p.property_type = ? AND p.is_approved = TRUE", " ORDER BY p.created_at DESC", propertyType)
}

func (r *PropertyRepository) GetPropertiesByLocation(ctx context.Context, propertyType, city string) ([]models.Property, error) {
	return r.queryProperties(ctx, "p.property_type = ? AND p.city = ? AND p.is_approved = TRUE", " ORDER BY p.created_at DESC", propertyType, city)
}

func (r *PropertyRepository) GetPropertiesByUserID(ctx context.Context, userID int) ([]models.Property, error) {
	return r.queryProperties(ctx, "p.user_id = ?", " ORDER BY p.created_at DESC", userID)
}

func (r *PropertyRepository) queryProperties(ctx context.Context, where, orderBy string, params ...interface{}) ([]models.Property, error) {
	query := "SELECT " + propertyColumns + " FROM properties p WHERE " + where + orderBy

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProperties(rows)
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id int) (models.Property, error) {
	query := "SELECT " + propertyColumns + " FROM properties p WHERE p.id = ?"

	var p models.Property
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.City, &p.Price, &p.PropertyType, &p.SquareMeter,
		&p.Bedrooms, &p.Bathrooms, &p.LivingRooms, &p.Balconies, &p.ParkingSpaces, &p.Furnished, &p.YearBuilt,
		&p.IsForRent, &p.IsApproved, &p.CreatedAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.Time
	}
	return p, nil
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (models.Property, error) {
	query := `
    INSERT INTO properties (user_id, name, description, city, price, property_type, square_meter, bedrooms,
                            bathrooms, living_rooms, balconies, parking_spaces, furnished, year_built,
                            is_for_rent, is_approved, created_at)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, FALSE, ?)
    `
	p.CreatedAt = time.Now()
	p.IsApproved = false

	result, err := r.DB.ExecContext(ctx, query,
		p.UserID, p.Name, p.Description, p.City, p.Price, p.PropertyType, p.SquareMeter, p.Bedrooms,
		p.Bathrooms, p.LivingRooms, p.Balconies, p.ParkingSpaces, p.Furnished, p.YearBuilt,
		p.IsForRent, p.CreatedAt,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.Property{}, models.ErrDuplicatePropertyName
		}
		return models.Property{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Property{}, err
	}
	p.ID = int(lastID)
	return p, nil
}

// UpdateProperty applies a partial update: only non-nil fields of upd are
// written. Supplying no fields is a no-op that still returns the current row.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, id int, upd models.PropertyUpdate) (models.Property, error) {
	var (
		assignments []string
		params      []interface{}
	)

	appendSet := func(column string, value interface{}) {
		assignments = append(assignments, column+" = ?")
		params = append(params, value)
	}

	if upd.Name != nil {
		appendSet("name", *upd.Name)
	}
	if upd.Description != nil {
		appendSet("description", *upd.Description)
	}
	if upd.City != nil {
		appendSet("city", *upd.City)
	}
	if upd.Price != nil {
		appendSet("price", *upd.Price)
	}
	if upd.PropertyType != nil {
		appendSet("property_type", *upd.PropertyType)
	}
	if upd.SquareMeter != nil {
		appendSet("square_meter", *upd.SquareMeter)
	}
	if upd.Bedrooms != nil {
		appendSet("bedrooms", *upd.Bedrooms)
	}
	if upd.Bathrooms != nil {
		appendSet("bathrooms", *upd.Bathrooms)
	}
	if upd.LivingRooms != nil {
		appendSet("living_rooms", *upd.LivingRooms)
	}
	if upd.Balconies != nil {
		appendSet("balconies", *upd.Balconies)
	}
	if upd.ParkingSpaces != nil {
		appendSet("parking_spaces", *upd.ParkingSpaces)
	}
	if upd.Furnished != nil {
		appendSet("furnished", *upd.Furnished)
	}
	if upd.YearBuilt != nil {
		appendSet("year_built", *upd.YearBuilt)
	}
	if upd.IsForRent != nil {
		appendSet("is_for_rent", *upd.IsForRent)
	}

	if len(assignments) == 0 {
		return r.GetPropertyByID(ctx, id)
	}

	appendSet("updated_at", time.Now())
	params = append(params, id)

	query := "UPDATE properties SET " + strings.Join(assignments, ", ") + " WHERE id = ?"
	_, err := r.DB.ExecContext(ctx, query, params...)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.Property{}, models.ErrDuplicatePropertyName
		}
		return models.Property{}, err
	}

	return r.GetPropertyByID(ctx, id)
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

// ApproveProperty flips the one-way approval gate. Approving an already
// approved listing is a no-op, not an error.
func (r *PropertyRepository) ApproveProperty(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE properties SET is_approved = TRUE, updated_at = ? WHERE id = ?`, time.Now(), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		if _, err := r.GetPropertyByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func scanProperties(rows *sql.Rows) ([]models.Property, error) {
	properties := []models.Property{}
	for rows.Next() {
		var p models.Property
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Description, &p.City, &p.Price, &p.PropertyType, &p.SquareMeter,
			&p.Bedrooms, &p.Bathrooms, &p.LivingRooms, &p.Balconies, &p.ParkingSpaces, &p.Furnished, &p.YearBuilt,
			&p.IsForRent, &p.IsApproved, &p.CreatedAt, &updatedAt,
		); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			p.UpdatedAt = &updatedAt.Time
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}
