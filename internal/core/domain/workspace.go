package domain

import "github.com/shopspring/decimal"

// Workspace is a rentable space listing with pricing, occupancy and features.
type Workspace struct {
	WorkspaceID int64           `json:"workspaceID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Occupancy   int             `json:"occupancy"`
	Dimensions  string          `json:"dimensions"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	IsActive    bool            `json:"isActive"`
	LocationID  int64           `json:"locationID"`
	AuditFields

	// Optional associations, populated depending on the query shape.
	Location *WorkspaceLocation      `json:"location,omitempty"`
	Pictures []WorkspacePic          `json:"pictures,omitempty"`
	Features []WorkspaceFeatureState `json:"features,omitempty"`
}

// WorkspacePic is an image reference attached to a workspace.
type WorkspacePic struct {
	PicID       int64  `json:"picID"`
	WorkspaceID int64  `json:"workspaceID"`
	ImagePath   string `json:"imagePath"`
}

// WorkspaceFeatureState is the per-(workspace, feature) status row.
type WorkspaceFeatureState struct {
	WorkspaceID int64  `json:"workspaceID"`
	FeatureID   int64  `json:"featureID"`
	Name        string `json:"name"`
	Status      bool   `json:"status"`
}

// OwnerID returns the owner of the workspace's location, if the location is loaded.
func (w Workspace) OwnerID() (int64, bool) {
	if w.Location == nil {
		return 0, false
	}
	return w.Location.OwnerID, true
}

// FirstPicture returns the first image path, or "" when there is none.
func (w Workspace) FirstPicture() string {
	if len(w.Pictures) == 0 {
		return ""
	}
	return w.Pictures[0].ImagePath
}
