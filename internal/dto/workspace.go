package dto

import (
	"time"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name          string          `json:"name" binding:"required,max=255"`
	Description   string          `json:"description"`
	LocationID    int64           `json:"locationID" binding:"required,gt=0"`
	Occupancy     int             `json:"occupancy" binding:"gte=0"`
	Dimensions    string          `json:"dimensions"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	ImageFileName string          `json:"imageFileName"`
	IsActive      *bool           `json:"isActive"`
	Features      []FeatureStatus `json:"features"`
}

// FeatureStatus is one feature flag in a workspace request.
type FeatureStatus struct {
	FeatureID int64 `json:"featureID" binding:"required,gt=0"`
	Status    bool  `json:"status"`
}

// UpdateWorkspaceRequest is the flattened editor submission.
type UpdateWorkspaceRequest struct {
	Name          string                 `json:"name" binding:"required,max=255"`
	Description   string                 `json:"description"`
	LocationID    int64                  `json:"locationID" binding:"required,gt=0"`
	LocationName  string                 `json:"locationName"`
	Occupancy     int                    `json:"occupancy" binding:"gte=0"`
	Dimensions    string                 `json:"dimensions"`
	DailyRate     decimal.Decimal        `json:"dailyRate"`
	ImageFileName string                 `json:"imageFileName"`
	IsActive      bool                   `json:"isActive"`
	StartDate     *string                `json:"startDate"`
	EndDate       *string                `json:"endDate"`
	Features      []domain.FeatureToggle `json:"features"`
}

// ToSubmission converts the request into the domain submission for workspaceID.
func (r UpdateWorkspaceRequest) ToSubmission(workspaceID int64) domain.WorkspaceSubmission {
	return domain.WorkspaceSubmission{
		WorkspaceID:   workspaceID,
		Name:          r.Name,
		Description:   r.Description,
		LocationID:    r.LocationID,
		LocationName:  r.LocationName,
		Occupancy:     r.Occupancy,
		Dimensions:    r.Dimensions,
		DailyRate:     r.DailyRate,
		ImageFileName: r.ImageFileName,
		IsActive:      r.IsActive,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Features:      r.Features,
	}
}

// PictureResponse is a workspace picture.
type PictureResponse struct {
	PicID     int64  `json:"picID"`
	ImagePath string `json:"imagePath"`
}

// WorkspaceResponse defines data returned for a workspace.
type WorkspaceResponse struct {
	WorkspaceID int64                          `json:"workspaceID"`
	Name        string                         `json:"name"`
	Description string                         `json:"description"`
	Occupancy   int                            `json:"occupancy"`
	Dimensions  string                         `json:"dimensions"`
	DailyRate   decimal.Decimal                `json:"dailyRate"`
	IsActive    bool                           `json:"isActive"`
	LocationID  int64                          `json:"locationID"`
	Location    *LocationResponse              `json:"location,omitempty"`
	Pictures    []PictureResponse              `json:"pictures"`
	Features    []domain.WorkspaceFeatureState `json:"features,omitempty"`
	CreatedAt   time.Time                      `json:"createdAt"`
	UpdatedAt   time.Time                      `json:"updatedAt"`
}

// ToWorkspaceResponse converts domain.Workspace to DTO.
func ToWorkspaceResponse(w *domain.Workspace) WorkspaceResponse {
	resp := WorkspaceResponse{
		WorkspaceID: w.WorkspaceID,
		Name:        w.Name,
		Description: w.Description,
		Occupancy:   w.Occupancy,
		Dimensions:  w.Dimensions,
		DailyRate:   w.DailyRate,
		IsActive:    w.IsActive,
		LocationID:  w.LocationID,
		Pictures:    make([]PictureResponse, len(w.Pictures)),
		Features:    w.Features,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	for i, p := range w.Pictures {
		resp.Pictures[i] = PictureResponse{PicID: p.PicID, ImagePath: p.ImagePath}
	}
	if w.Location != nil {
		loc := ToLocationResponse(w.Location)
		resp.Location = &loc
	}
	return resp
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts a slice of domain.Workspace to DTO.
func ToListWorkspacesResponse(ws []domain.Workspace) ListWorkspacesResponse {
	list := make([]WorkspaceResponse, len(ws))
	for i := range ws {
		list[i] = ToWorkspaceResponse(&ws[i])
	}
	return ListWorkspacesResponse{Workspaces: list}
}

// AcknowledgeResponse is returned after a successful write.
type AcknowledgeResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message"`
}

// WorkspaceUpdatedMessage is shown after the editor is saved.
const WorkspaceUpdatedMessage = "Workspace has been successfully updated"
