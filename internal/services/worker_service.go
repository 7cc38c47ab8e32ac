package services

import (
	"encoding/json"
	"math"

	"workhub_backend/internal/models"
	"workhub_backend/internal/repositories"
	"workhub_backend/internal/services/dto"
	"workhub_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// nearbyRadiusDegrees - порог евклидовой дистанции в градусах,
// примерно 3 км. Заглушка, не геодезический расчет.
const nearbyRadiusDegrees = 0.05

type WorkerService interface {
	GetProfile(db *gorm.DB, profileID string) (*models.WorkerProfile, error)
	UpdateSkills(db *gorm.DB, profileID, requesterID string, skills []string) (*models.WorkerProfile, error)
	UpdateAvailability(db *gorm.DB, profileID, requesterID string, hours int) (*models.WorkerProfile, error)
	UpdateLocation(db *gorm.DB, profileID, requesterID string, lat, lng float64) error
	ListNearby(db *gorm.DB, lat, lng float64) ([]dto.NearbyWorker, error)
}

type WorkerServiceImpl struct {
	profileRepo repositories.WorkerProfileRepository
}

func NewWorkerService(profileRepo repositories.WorkerProfileRepository) WorkerService {
	return &WorkerServiceImpl{profileRepo: profileRepo}
}

// GetProfile - публичное чтение профиля
func (s *WorkerServiceImpl) GetProfile(db *gorm.DB, profileID string) (*models.WorkerProfile, error) {
	profile, err := s.profileRepo.FindByID(db, profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrWorkerProfileNotFound) {
			return nil, apperrors.ErrNotFound("workers", "Worker not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// checkOwnership - мутации профиля разрешены только его владельцу
func (s *WorkerServiceImpl) checkOwnership(profile *models.WorkerProfile, requesterID string) error {
	if profile.UserID != requesterID {
		return apperrors.NewForbiddenError("Only the profile owner can modify it")
	}
	return nil
}

// UpdateSkills заменяет список навыков целиком
func (s *WorkerServiceImpl) UpdateSkills(db *gorm.DB, profileID, requesterID string, skills []string) (*models.WorkerProfile, error) {
	profile, err := s.GetProfile(db, profileID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(profile, requesterID); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.profileRepo.Update(db, profileID, map[string]interface{}{
		"skills": datatypes.JSON(raw),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile.Skills = datatypes.JSON(raw)
	return profile, nil
}

// UpdateAvailability: is_available выводится из hours (hours > 0)
func (s *WorkerServiceImpl) UpdateAvailability(db *gorm.DB, profileID, requesterID string, hours int) (*models.WorkerProfile, error) {
	profile, err := s.GetProfile(db, profileID)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(profile, requesterID); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Update(db, profileID, map[string]interface{}{
		"is_available":    hours > 0,
		"available_hours": hours,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile.IsAvailable = hours > 0
	profile.AvailableHours = hours
	return profile, nil
}

// UpdateLocation обновляет координаты профиля
func (s *WorkerServiceImpl) UpdateLocation(db *gorm.DB, profileID, requesterID string, lat, lng float64) error {
	profile, err := s.GetProfile(db, profileID)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(profile, requesterID); err != nil {
		return err
	}

	if err := s.profileRepo.Update(db, profileID, map[string]interface{}{
		"latitude":  lat,
		"longitude": lng,
	}); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListNearby - линейный проход по профилям с координатами,
// евклидова дистанция с фиксированным порогом
func (s *WorkerServiceImpl) ListNearby(db *gorm.DB, lat, lng float64) ([]dto.NearbyWorker, error) {
	profiles, err := s.profileRepo.FindWithCoordinates(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	results := make([]dto.NearbyWorker, 0)
	for i := range profiles {
		p := &profiles[i]
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}

		dist := math.Hypot(*p.Latitude-lat, *p.Longitude-lng)
		if dist > nearbyRadiusDegrees {
			continue
		}

		var skills []string
		if len(p.Skills) > 0 {
			// Нечитаемый skills JSON не валит весь поиск
			_ = json.Unmarshal(p.Skills, &skills)
		}

		results = append(results, dto.NearbyWorker{
			ID:       p.ID,
			Skills:   skills,
			Lat:      *p.Latitude,
			Lng:      *p.Longitude,
			Distance: math.Round(dist*10000) / 10000,
		})
	}

	return results, nil
}
