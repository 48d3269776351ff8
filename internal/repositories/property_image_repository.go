package repositories

import (
	"context"
	"database/sql"

	"aqarBack/internal/models"
)

type PropertyImageRepository struct {
	DB *sql.DB
}

func (r *PropertyImageRepository) AddImage(ctx context.Context, image models.PropertyImage) (models.PropertyImage, error) {
	result, err := r.DB.ExecContext(ctx,
		`INSERT INTO property_images (property_id, image_url) VALUES (?, ?)`,
		image.PropertyID, image.ImageURL,
	)
	if err != nil {
		return models.PropertyImage{}, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return models.PropertyImage{}, err
	}
	image.ID = int(lastID)
	return image, nil
}

func (r *PropertyImageRepository) GetImagesByPropertyID(ctx context.Context, propertyID int) ([]models.PropertyImage, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, property_id, image_url FROM property_images WHERE property_id = ? ORDER BY id ASC`,
		propertyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.PropertyImage{}
	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.ImageURL); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

// GetImageURLsByPropertyID returns image URLs in insertion order. A property
// with no images gets an empty slice, never nil.
func (r *PropertyImageRepository) GetImageURLsByPropertyID(ctx context.Context, propertyID int) ([]string, error) {
	images, err := r.GetImagesByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.ImageURL)
	}
	return urls, nil
}

func (r *PropertyImageRepository) GetImageByID(ctx context.Context, id int) (models.PropertyImage, error) {
	var img models.PropertyImage
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, property_id, image_url FROM property_images WHERE id = ?`, id,
	).Scan(&img.ID, &img.PropertyID, &img.ImageURL)
	if err == sql.ErrNoRows {
		return models.PropertyImage{}, models.ErrImageNotFound
	}
	if err != nil {
		return models.PropertyImage{}, err
	}
	return img, nil
}

func (r *PropertyImageRepository) DeleteImage(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM property_images WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrImageNotFound
	}
	return nil
}
