package domain

// Feature is a boolean amenity catalog entry, optionally enabled per workspace.
type Feature struct {
	FeatureID int64  `json:"featureID"`
	Name      string `json:"name"`
}

// FeatureToggle is one row of the editor's feature list.
type FeatureToggle struct {
	FeatureID int64  `json:"featureID"`
	Name      string `json:"name"`
	Status    bool   `json:"status"`
}

// OverlayFeatures merges the global catalog with a workspace's feature states.
// Every catalog entry appears exactly once, in catalog order; entries without a state are disabled.
// States for features missing from the catalog are ignored.
func OverlayFeatures(catalog []Feature, states []WorkspaceFeatureState) []FeatureToggle {
	byID := make(map[int64]bool, len(states))
	for _, s := range states {
		byID[s.FeatureID] = s.Status
	}

	out := make([]FeatureToggle, 0, len(catalog))
	seen := make(map[int64]struct{}, len(catalog))
	for _, f := range catalog {
		if _, dup := seen[f.FeatureID]; dup {
			continue
		}
		seen[f.FeatureID] = struct{}{}
		out = append(out, FeatureToggle{
			FeatureID: f.FeatureID,
			Name:      f.Name,
			Status:    byID[f.FeatureID],
		})
	}
	return out
}

// ToggleFeature returns a copy of features with the status of featureID flipped.
// The input slice is left untouched.
func ToggleFeature(features []FeatureToggle, featureID int64) []FeatureToggle {
	out := make([]FeatureToggle, len(features))
	copy(out, features)
	for i := range out {
		if out[i].FeatureID == featureID {
			out[i].Status = !out[i].Status
			break
		}
	}
	return out
}
