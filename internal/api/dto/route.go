package dto

import "time"

type LocationRequest struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type OrderRequest struct {
	Restaurant   LocationRequest `json:"restaurant"`
	Customer     LocationRequest `json:"customer"`
	PrepTimeMins float64         `json:"prep_time_mins"`
}

type RouteRequest struct {
	Source LocationRequest `json:"source"`
	Orders []OrderRequest  `json:"orders"`
}

type RouteResponse struct {
	BestPath      []string `json:"best_path"`
	TotalTimeMins float64  `json:"total_time_mins"`
}

type RecentRouteResponse struct {
	SourceID      string    `json:"source_id"`
	OrderCount    int       `json:"order_count"`
	BestPath      []string  `json:"best_path"`
	TotalTimeMins float64   `json:"total_time_mins"`
	ComputedAt    time.Time `json:"computed_at"`
}

type ListRecentRoutesResponse struct {
	Routes []RecentRouteResponse `json:"routes"`
}
