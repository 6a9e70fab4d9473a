package server

import "github.com/sig-0/penrates/rates"

type HealthResponse struct {
	Status  string `json:"status"`
	Samples int    `json:"samples"`
	Clients int    `json:"clients"`
}

type RatesTodayResponse struct {
	Results []*rates.Sample `json:"results"`
}
