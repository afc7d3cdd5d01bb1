package respond

import (
	"time"

	"RoastMe/internal/modules/roast/domain/entity"
)

type RoastRespond struct {
	Id             string          `json:"id"`
	Roast          string          `json:"roast"`
	Intensity      string          `json:"intensity"`
	UserData       entity.UserData `json:"user_data"`
	CreatedAt      time.Time       `json:"created_at"`
	ProcessingTime float64         `json:"processing_time"`
}

type IntensityBucket struct {
	Intensity string `json:"_id"`
	Count     int64  `json:"count"`
}

type RoastStatsRespond struct {
	TotalRoasts           int64             `json:"total_roasts"`
	IntensityDistribution []IntensityBucket `json:"intensity_distribution"`
	ApiStatus             string            `json:"api_status"`
}
