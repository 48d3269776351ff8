package repositories

import (
	"context"
	"database/sql"
	"time"

	"aqarBack/internal/models"
)

type InquiryRepository struct {
	DB *sql.DB
}

func (r *InquiryRepository) CreateInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error) {
	query := `
        INSERT INTO inquiries (property_id, user_id, message, created_at)
        VALUES (?, ?, ?, ?)
    `
	inquiry.CreatedAt = time.Now()
	result, err := r.DB.ExecContext(ctx, query,
		inquiry.PropertyID, inquiry.UserID, inquiry.Message, inquiry.CreatedAt,
	)
	if err != nil {
		return models.Inquiry{}, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Inquiry{}, err
	}
	inquiry.ID = int(lastID)
	return inquiry, nil
}

func (r *InquiryRepository) GetInquiriesByPropertyID(ctx context.Context, propertyID int) ([]models.Inquiry, error) {
	query := `
        SELECT i.id, i.property_id, i.user_id, u.name, u.phone, i.message, i.created_at
        FROM inquiries i
        JOIN users u ON i.user_id = u.id
        WHERE i.property_id = ?
        ORDER BY i.created_at DESC
    `
	rows, err := r.DB.QueryContext(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		var inq models.Inquiry
		if err := rows.Scan(&inq.ID, &inq.PropertyID, &inq.UserID, &inq.SenderName, &inq.SenderPhone, &inq.Message, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepository) DeleteInquiry(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM inquiries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrInquiryNotFound
	}
	return nil
}
