package services

import (
	"context"

	"aqarBack/internal/models"
	"aqarBack/internal/repositories"
)

type InquiryService struct {
	InquiryRepo  *repositories.InquiryRepository
	PropertyRepo *repositories.PropertyRepository
}

func (s *InquiryService) CreateInquiry(ctx context.Context, inquiry models.Inquiry) (models.Inquiry, error) {
	if _, err := s.PropertyRepo.GetPropertyByID(ctx, inquiry.PropertyID); err != nil {
		return models.Inquiry{}, err
	}
	return s.InquiryRepo.CreateInquiry(ctx, inquiry)
}

// GetInquiriesByPropertyID lists inquiries on a listing. Ownership checks
// happen at the HTTP boundary, which knows the authenticated caller.
func (s *InquiryService) GetInquiriesByPropertyID(ctx context.Context, propertyID int) ([]models.Inquiry, error) {
	if _, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return s.InquiryRepo.GetInquiriesByPropertyID(ctx, propertyID)
}

func (s *InquiryService) DeleteInquiry(ctx context.Context, id int) error {
	return s.InquiryRepo.DeleteInquiry(ctx, id)
}
