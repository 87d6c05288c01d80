package domain

import "github.com/shopspring/decimal"

// DefaultUploadMessage is the file picker caption shown before a file is chosen.
const DefaultUploadMessage = "Choose a file..."

// EditorSection names a part of the editor that is loaded independently.
type EditorSection string

const (
	SectionLocations   EditorSection = "locations"
	SectionFeatures    EditorSection = "features"
	SectionBookedDates EditorSection = "bookedDates"
)

// LocationOption is one entry of the relocate dropdown.
type LocationOption struct {
	LocationID  int64  `json:"locationID"`
	FullAddress string `json:"fullAddress"`
}

// WorkspaceSubmission is the flattened update sent when the editor is saved.
// It is the editor form minus its UI-only state.
type WorkspaceSubmission struct {
	WorkspaceID   int64            `json:"workspaceID"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	LocationID    int64            `json:"locationID"`
	LocationName  string           `json:"locationName"`
	Occupancy     int              `json:"occupancy"`
	Dimensions    string           `json:"dimensions"`
	DailyRate     decimal.Decimal  `json:"dailyRate"`
	ImageFileName string           `json:"imageFileName"`
	IsActive      bool             `json:"isActive"`
	StartDate     *string          `json:"startDate"`
	EndDate       *string          `json:"endDate"`
	Locations     []LocationOption `json:"locations"`
	Features      []FeatureToggle  `json:"features"`
	BookedDates   []string         `json:"bookedDates"`
}

// EditorUIState holds the transient, UI-only fields of the editor form.
type EditorUIState struct {
	SelectedFile   *string `json:"selectedFile"`
	Message        string  `json:"message"`
	DefaultMessage string  `json:"defaultMessage"`
	Uploading      bool    `json:"uploading"`
	FocusedInput   *string `json:"focusedInput"`
}

// WorkspaceEditorForm aggregates a workspace, its owner's locations, the feature
// catalog overlay and the booked days into one editable form.
type WorkspaceEditorForm struct {
	WorkspaceSubmission
	EditorUIState

	// SectionErrors records sections that failed to load; the rest of the form is still usable.
	SectionErrors map[EditorSection]string `json:"sectionErrors,omitempty"`
}

// NewEditorUIState returns the initial UI state of a freshly loaded editor.
func NewEditorUIState() EditorUIState {
	return EditorUIState{
		Message:        DefaultUploadMessage,
		DefaultMessage: DefaultUploadMessage,
	}
}

// Submission strips the UI-only fields and returns the payload to persist.
func (f WorkspaceEditorForm) Submission() WorkspaceSubmission {
	s := f.WorkspaceSubmission
	s.Locations = append([]LocationOption(nil), f.Locations...)
	s.Features = append([]FeatureToggle(nil), f.Features...)
	s.BookedDates = append([]string(nil), f.BookedDates...)
	return s
}

// ToggleFeature returns a copy of the form with one feature flipped.
func (f WorkspaceEditorForm) ToggleFeature(featureID int64) WorkspaceEditorForm {
	f.Features = ToggleFeature(f.Features, featureID)
	return f
}
