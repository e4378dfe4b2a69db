package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"fish-tracker-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FishSyncClient pulls the fish catalog from the external fish API and
// keeps the local mirror table fresh.
type FishSyncClient struct {
	BaseURL    string
	HTTPClient *http.Client
	DB         *gorm.DB
}

func NewFishSyncClient(db *gorm.DB) *FishSyncClient {
	baseURL := os.Getenv("FISH_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5555/api"
	}
	return &FishSyncClient{
		BaseURL: baseURL,
		DB:      db,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apiFish is the external API's fish shape.
type apiFish struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Image          string `json:"image"`
	Rarity         string `json:"rarity"`
	LatestSighting *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timestamp string  `json:"timestamp"`
	} `json:"latestSighting"`
}

// FetchCatalog pulls the full fish list from the external API.
func (c *FishSyncClient) FetchCatalog(ctx context.Context) ([]models.Fish, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/fish", c.BaseURL), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call fish API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fish API returned status %d: %s", resp.StatusCode, string(body))
	}

	var raw []apiFish
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode fish API response: %w", err)
	}

	fishes := make([]models.Fish, 0, len(raw))
	for _, f := range raw {
		row := models.Fish{
			ID:     f.ID,
			Name:   f.Name,
			Rarity: f.Rarity,
		}
		if f.Image != "" {
			img := f.Image
			row.Image = &img
		}
		if f.LatestSighting != nil {
			lat, lng, ts := f.LatestSighting.Latitude, f.LatestSighting.Longitude, f.LatestSighting.Timestamp
			row.LatestSightingLatitude = &lat
			row.LatestSightingLongitude = &lng
			row.LatestSightingTimestamp = &ts
		}
		fishes = append(fishes, row)
	}
	return fishes, nil
}

// PollFishCatalog periodically upserts the external catalog into the local
// mirror table. Failures are logged and retried on the next tick.
func PollFishCatalog(ctx context.Context, client *FishSyncClient, pollInterval time.Duration) {
	log.Println("Starting fish catalog polling...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	// One pull up front so the map isn't empty until the first tick.
	syncOnce(ctx, client)

	for {
		select {
		case <-ctx.Done():
			log.Println("Fish catalog polling stopped.")
			return
		case <-ticker.C:
			syncOnce(ctx, client)
		}
	}
}

func syncOnce(ctx context.Context, client *FishSyncClient) {
	fishes, err := client.FetchCatalog(ctx)
	if err != nil {
		log.Printf("❌ Error polling fish catalog: %v", err)
		return
	}
	if len(fishes) == 0 {
		return
	}

	if err := client.DB.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name",
				"image",
				"rarity",
				"latest_sighting_latitude",
				"latest_sighting_longitude",
				"latest_sighting_timestamp",
				"updated_at",
			}),
		},
	).Create(&fishes).Error; err != nil {
		log.Printf("❌ Failed to upsert %d fish into catalog: %v", len(fishes), err)
		return
	}

	log.Printf("🐟 Synced %d fish from external API", len(fishes))
}
