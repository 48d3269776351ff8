package repositories

import (
	"context"
	"database/sql"

	"aqarBack/internal/models"
)

// PropertyModelRepository stores 360° viewer assets referenced by URL.
type PropertyModelRepository struct {
	DB *sql.DB
}

func (r *PropertyModelRepository) AddModel(ctx context.Context, model models.PropertyModel) (models.PropertyModel, error) {
	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO property_models (property_id, model_url) VALUES (?, ?)`,
		model.PropertyID, model.ModelURL,
	)
	if err != nil {
		return models.PropertyModel{}, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return models.PropertyModel{}, err
	}
	model.ID = int(lastID)
	return model, nil
}

func (r *PropertyModelRepository) GetModelsByPropertyID(ctx context.Context, propertyID int) ([]models.PropertyModel, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, property_id, model_url FROM property_models WHERE property_id = ? ORDER BY id ASC`,
		propertyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	propertyModels := []models.PropertyModel{}
	for rows.Next() {
		var m models.PropertyModel
		if err := rows.Scan(&m.ID, &m.PropertyID, &m.ModelURL); err != nil {
			return nil, err
		}
		propertyModels = append(propertyModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return propertyModels, nil
}

func (r *PropertyModelRepository) GetModelByID(ctx context.Context, id int) (models.PropertyModel, error) {
	var m models.PropertyModel
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, property_id, model_url FROM property_models WHERE id = ?`, id,
	).Scan(&m.ID, &m.PropertyID, &m.ModelURL)
	if err == sql.ErrNoRows {
		return models.PropertyModel{}, models.ErrModelNotFound
	}
	if err != nil {
		return models.PropertyModel{}, err
	}
	return m, nil
}

func (r *PropertyModelRepository) DeleteModel(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM property_models WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrModelNotFound
	}
	return nil
}
