package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"aqarBack/internal/cache"
	"aqarBack/internal/models"
	"aqarBack/internal/repositories"
)

// PropertyService orchestrates store access, the dynamic filter builder and
// image attachment for every listing operation.
type PropertyService struct {
	PropertyRepo *repositories.PropertyRepository
	ImageRepo    *repositories.PropertyImageRepository
	ModelRepo    *repositories.PropertyModelRepository
	SearchCache  *cache.SearchCache
}

func (s *PropertyService) GetApprovedProperties(ctx context.Context) ([]models.Property, error) {
	return s.PropertyRepo.GetApprovedProperties(ctx)
}

func (s *PropertyService) GetNonApprovedProperties(ctx context.Context) ([]models.Property, error) {
	properties, err := s.PropertyRepo.GetNonApprovedProperties(ctx)
	if err != nil {
		return nil, err
	}
	if err := attachImages(ctx, properties, s.ImageRepo.GetImageURLsByPropertyID); err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *PropertyService) GetPropertiesByType(ctx context.Context, propertyType string) ([]models.Property, error) {
	return s.PropertyRepo.GetPropertiesByType(ctx, propertyType)
}

func (s *PropertyService) GetPropertiesByLocation(ctx context.Context, propertyType, city string) ([]models.Property, error) {
	return s.PropertyRepo.GetPropertiesByLocation(ctx, propertyType, city)
}

func (s *PropertyService) GetPropertiesByUserID(ctx context.Context, userID int) ([]models.Property, error) {
	properties, err := s.PropertyRepo.GetPropertiesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := attachImages(ctx, properties, s.ImageRepo.GetImageURLsByPropertyID); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetPropertiesDynamic runs the full filter builder, attaches images and caches
// the composed result keyed by the canonical filter encoding.
func (s *PropertyService) GetPropertiesDynamic(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	key := cache.Key(filter)

	var cached []models.Property
	if hit, err := s.SearchCache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	properties, err := s.PropertyRepo.GetPropertiesWithFilters(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := attachImages(ctx, properties, s.ImageRepo.GetImageURLsByPropertyID); err != nil {
		return nil, err
	}

	// Cache failures only cost the next request a DB round trip.
	_ = s.SearchCache.Set(ctx, key, properties)

	return properties, nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id int) (models.Property, error) {
	return s.PropertyRepo.GetPropertyByID(ctx, id)
}

func (s *PropertyService) GetPropertyModels(ctx context.Context, propertyID int) ([]models.PropertyModel, error) {
	if _, err := s.PropertyRepo.GetPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return s.ModelRepo.GetModelsByPropertyID(ctx, propertyID)
}

func (s *PropertyService) CreateProperty(ctx context.Context, property models.Property) (models.Property, error) {
	created, err := s.PropertyRepo.CreateProperty(ctx, property)
	if err != nil {
		return models.Property{}, err
	}
	_ = s.SearchCache.Invalidate(ctx)
	return created, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id int, upd models.PropertyUpdate) (models.Property, error) {
	updated, err := s.PropertyRepo.UpdateProperty(ctx, id, upd)
	if err != nil {
		return models.Property{}, err
	}
	_ = s.SearchCache.Invalidate(ctx)
	return updated, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id int) error {
	if err := s.PropertyRepo.DeleteProperty(ctx, id); err != nil {
		return err
	}
	_ = s.SearchCache.Invalidate(ctx)
	return nil
}

func (s *PropertyService) ApproveProperty(ctx context.Context, id int) error {
	if err := s.PropertyRepo.ApproveProperty(ctx, id); err != nil {
		return err
	}
	_ = s.SearchCache.Invalidate(ctx)
	return nil
}

// attachImages fans out one image fetch per property and joins before
// returning. Output order matches input order regardless of completion order.
// Any single fetch failure cancels the rest and fails the whole composition.
func attachImages(ctx context.Context, properties []models.Property, fetch func(context.Context, int) ([]string, error)) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := range properties {
		i := i
		g.Go(func() error {
			urls, err := fetch(ctx, properties[i].ID)
			if err != nil {
				return err
			}
			properties[i].Images = urls
			return nil
		})
	}
	return g.Wait()
}
