package dto

import "github.com/Sachin796/Worktopia/internal/core/domain"

// FeatureResponse is one catalog entry.
type FeatureResponse struct {
	FeatureID int64  `json:"featureID"`
	Name      string `json:"name"`
}

// ToFeatureResponses converts the catalog to DTO.
func ToFeatureResponses(fs []domain.Feature) []FeatureResponse {
	list := make([]FeatureResponse, len(fs))
	for i, f := range fs {
		list[i] = FeatureResponse{FeatureID: f.FeatureID, Name: f.Name}
	}
	return list
}
