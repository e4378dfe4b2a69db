package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"fish-tracker-system/models"
	"fish-tracker-system/utils"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOutsideDivingArea = errors.New("sighting is outside the diving center radius")

// FishService serves the local fish catalog mirror and forwards sighting
// reports to the external fish API before updating the mirror row.
type FishService struct {
	DB         *gorm.DB
	APIBaseURL string
}

func NewFishService(db *gorm.DB) *FishService {
	baseURL := os.Getenv("FISH_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5555/api"
	}
	return &FishService{DB: db, APIBaseURL: baseURL}
}

// ListFish returns the full catalog with latest sightings.
func (s *FishService) ListFish() ([]models.Fish, error) {
	var fishes []models.Fish
	err := s.DB.Order("name ASC").Find(&fishes).Error
	return fishes, err
}

// GetFish fetches one catalog row.
func (s *FishService) GetFish(fishID string) (*models.Fish, error) {
	var f models.Fish
	if err := s.DB.Where("id = ?", fishID).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFishNotFound
		}
		return nil, err
	}
	return &f, nil
}

// SightingReport is an incoming sighting from the map client.
type SightingReport struct {
	FishID         string  `json:"fishId"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Timestamp      string  `json:"timestamp"`
	DivingCenterID string  `json:"divingCenterId,omitempty"`
}

// ReportSighting validates the position against the chosen diving center,
// forwards the sighting to the external fish API and then updates the local
// mirror. The external API is the source of truth; the mirror update only
// happens after it accepts the report.
func (s *FishService) ReportSighting(report SightingReport) error {
	if report.DivingCenterID != "" {
		var center models.DivingCenter
		if err := s.DB.Where("id = ?", report.DivingCenterID).First(&center).Error; err == nil {
			radius := center.RadiusKm
			if radius <= 0 {
				radius = models.DefaultDivingRadiusKm
			}
			if !utils.WithinRadius(center.Latitude, center.Longitude, report.Latitude, report.Longitude, radius) {
				return ErrOutsideDivingArea
			}
		}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"fishId":    report.FishID,
		"latitude":  report.Latitude,
		"longitude": report.Longitude,
		"timestamp": report.Timestamp,
	})
	if err != nil {
		return err
	}

	resp, err := utils.HTTPClient.Post(
		fmt.Sprintf("%s/fish-sightings", s.APIBaseURL),
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to reach fish API: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("fish API rejected sighting: status %d", resp.StatusCode)
	}

	return s.DB.Model(&models.Fish{}).
		Where("id = ?", report.FishID).
		Updates(map[string]interface{}{
			"latest_sighting_latitude":  report.Latitude,
			"latest_sighting_longitude": report.Longitude,
			"latest_sighting_timestamp": report.Timestamp,
		}).Error
}

// ListDivingCenters returns the seeded dive locations.
func (s *FishService) ListDivingCenters() ([]models.DivingCenter, error) {
	var centers []models.DivingCenter
	err := s.DB.Order("name ASC").Find(&centers).Error
	return centers, err
}

var defaultDivingCenters = []struct {
	Name     string
	Lat, Lng float64
}{
	{"Blue Hole Dive Center", 28.5723, 34.5370},
	{"Coral Bay Diving", 29.5321, 34.9482},
	{"Reef Explorers", 27.2579, 33.8116},
	{"Lighthouse Dive Point", 28.2096, 33.6235},
}

// SeedDivingCenters inserts the default dive locations if missing. IDs are
// slugs of the names so map links stay stable across environments.
func SeedDivingCenters(db *gorm.DB) error {
	for _, c := range defaultDivingCenters {
		center := models.DivingCenter{
			ID:        slug.Make(c.Name),
			Name:      c.Name,
			Latitude:  c.Lat,
			Longitude: c.Lng,
			RadiusKm:  models.DefaultDivingRadiusKm,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&center).Error; err != nil {
			return fmt.Errorf("failed to seed diving center %s: %w", c.Name, err)
		}
	}
	return nil
}
