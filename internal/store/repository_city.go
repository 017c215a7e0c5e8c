package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type cityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCityRepository(db *DB, logger *logger.Logger) CityRepository {
	logger.Debug().Msg("creating city repository")
	return &cityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *cityRepository) GetCityByID(ctx context.Context, cityID int64) (models.City, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCityByIDQuery(r.db.builder, cityID)
	if err != nil {
		log.Err(err).Str("func", "*cityRepository.GetCityByID").Msg("error building query")
		return models.City{}, err
	}

	var city models.City
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&city.CityID, &city.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.City{}, ErrCityNotFound
	case err != nil:
		log.Err(err).Str("func", "*cityRepository.GetCityByID").Int64("city_id", cityID).Msg("error scanning city")
		return models.City{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return city, nil
}
