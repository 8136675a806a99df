package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPlantTrees = "trees planted successfully"
	MessageSuccessGetTrees   = "tree planting history retrieved successfully"
	MessageFailedPlantTrees  = "failed to plant trees"
	MessageFailedGetTrees    = "failed to retrieve tree planting history"

	ErrInvalidTreeCount = errors.New("tree count must be between 1 and 10")
)

const (
	TokensPerTree        = 10
	MaxTreesPerDonation  = 10
	CarbonOffsetPerTree  = 22 // kg CO2/year, rough estimate
	TreePlantingLeadDays = 14

	DefaultPlantingLocation = "Hong Kong Reforestation Initiative"
	PlantedTreeSpecies      = "Native Hong Kong species (mix)"
)

type (
	PlantTreesRequest struct {
		TreeCount        int    `json:"tree_count"`
		PlantingLocation string `json:"planting_location"`
	}

	PlantTreesResponse struct {
		ID                    string `json:"id"`
		CertificateID         string `json:"certificate_id"`
		TreeCount             int    `json:"tree_count"`
		TokensCost            int    `json:"tokens_cost"`
		PlantingLocation      string `json:"planting_location"`
		EstimatedCarbonOffset string `json:"estimated_carbon_offset"`
	}

	TreePlanting struct {
		ID               string         `json:"id"`
		UserID           string         `json:"user_id"`
		TokensCost       int            `json:"tokens_cost"`
		TreeCount        int            `json:"tree_count"`
		CertificateID    string         `json:"certificate_id"`
		PlantingLocation string         `json:"planting_location"`
		Status           string         `json:"status"`
		Metadata         map[string]any `json:"metadata,omitempty"`
		CreatedAt        time.Time      `json:"created_at"`
	}

	GetTreesResponse struct {
		Trees      []*TreePlanting `json:"trees"`
		TotalTrees int             `json:"total_trees"`
		Pagination Pagination      `json:"pagination"`
	}
)
