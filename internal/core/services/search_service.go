package services

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
)

type searchService struct {
	BaseService
	store      portssvc.KeyValueStore
	workspaces portssvc.WorkspaceReaderSvc
	geocoder   portssvc.Geocoder
	validate   *validator.Validate
	now        func() time.Time
}

// SearchServiceOption configures optional collaborators of the search service.
type SearchServiceOption func(*searchService)

// WithGeocoder enables map pins on the review view.
func WithGeocoder(g portssvc.Geocoder) SearchServiceOption {
	return func(s *searchService) {
		s.geocoder = g
	}
}

// WithClock overrides the clock used for default dates.
func WithClock(now func() time.Time) SearchServiceOption {
	return func(s *searchService) {
		s.now = now
	}
}

// NewSearchService creates the search/review service backed by store.
func NewSearchService(store portssvc.KeyValueStore, workspaces portssvc.WorkspaceReaderSvc, opts ...SearchServiceOption) portssvc.SearchSvcFacade {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	s := &searchService{
		store:      store,
		workspaces: workspaces,
		validate:   v,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.SearchSvcFacade = (*searchService)(nil)

func (s *searchService) defaults() map[string]string {
	today := s.now().Format(domain.DateLayout)
	return map[string]string{
		domain.KeyLocation:     "",
		domain.KeyCheckinDate:  today,
		domain.KeyCheckoutDate: today,
		domain.KeyRoom:         "0",
		domain.KeyPeople:       "0",
	}
}

// GetParams returns the five search params, filling unset ones with defaults.
func (s *searchService) GetParams(ctx context.Context, session string) (map[string]string, error) {
	stored, err := s.store.GetAll(ctx, session)
	if err != nil {
		s.LogError(ctx, err, "Failed to read search params", slog.String("session_id", session))
		return nil, fmt.Errorf("failed to read search params: %w", err)
	}
	params := s.defaults()
	for _, key := range domain.SearchParamKeys {
		if v, ok := stored[key]; ok {
			params[key] = v
		}
	}
	return params, nil
}

func (s *searchService) UpdateParam(ctx context.Context, session, key, value string) error {
	if !slices.Contains(domain.SearchParamKeys, key) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("unknown search param %q", key))
	}
	if err := s.store.Set(ctx, session, key, value); err != nil {
		s.LogError(ctx, err, "Failed to store search param", slog.String("session_id", session), slog.String("key", key))
		return fmt.Errorf("failed to store search param: %w", err)
	}
	return nil
}

// SubmitSearch persists every param before validating, so a failed submit keeps the user's input.
// Blank dates, room and people keep their current value (stored or default); location is
// always taken as submitted.
func (s *searchService) SubmitSearch(ctx context.Context, session string, values map[string]string) (*domain.SearchParams, error) {
	merged, err := s.GetParams(ctx, session)
	if err != nil {
		return nil, err
	}
	for _, key := range domain.SearchParamKeys {
		if key == domain.KeyLocation || strings.TrimSpace(values[key]) != "" {
			merged[key] = values[key]
		}
	}

	for _, key := range domain.SearchParamKeys {
		if err := s.store.Set(ctx, session, key, merged[key]); err != nil {
			s.LogError(ctx, err, "Failed to store search param", slog.String("session_id", session), slog.String("key", key))
			return nil, fmt.Errorf("failed to store search params: %w", err)
		}
	}

	params, fields := parseSearchParams(merged)
	if err := s.validate.Struct(params); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("failed to validate search params: %w", err)
		}
		for _, fe := range verrs {
			if _, exists := fields[fe.Field()]; !exists {
				fields[fe.Field()] = validationMessage(fe)
			}
		}
	}
	if len(fields) > 0 {
		s.LogDebug(ctx, "Search params rejected", slog.Any("fields", fields))
		return nil, apperrors.NewFieldValidationError("invalid search parameters", fields)
	}
	return &params, nil
}

// parseSearchParams converts raw values, reporting conversion failures per field.
func parseSearchParams(values map[string]string) (domain.SearchParams, map[string]string) {
	fields := map[string]string{}
	params := domain.SearchParams{Location: strings.TrimSpace(values[domain.KeyLocation])}

	parseDate := func(key string) time.Time {
		raw := strings.TrimSpace(values[key])
		if raw == "" {
			return time.Time{}
		}
		t, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			fields[key] = "must be a date in YYYY-MM-DD format"
		}
		return t
	}
	parseInt := func(key string) int {
		raw := strings.TrimSpace(values[key])
		if raw == "" {
			return 0
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields[key] = "must be a whole number"
		}
		return n
	}

	params.CheckinDate = parseDate(domain.KeyCheckinDate)
	params.CheckoutDate = parseDate(domain.KeyCheckoutDate)
	params.Room = parseInt(domain.KeyRoom)
	params.People = parseInt(domain.KeyPeople)
	return params, fields
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "gtefield":
		return "must not be before " + domain.KeyCheckinDate
	}
	return "is invalid"
}

// Review prices the stay for the session's params and pins the workspace on the map.
// Geocoding failures leave the pin empty and center on the default city.
func (s *searchService) Review(ctx context.Context, session string, workspaceID int64) (*domain.WorkspaceReview, error) {
	ws, err := s.workspaces.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	values, err := s.GetParams(ctx, session)
	if err != nil {
		return nil, err
	}
	params, _ := parseSearchParams(values)
	if params.CheckinDate.IsZero() {
		params.CheckinDate, _ = time.Parse(domain.DateLayout, s.now().Format(domain.DateLayout))
	}
	if params.CheckoutDate.IsZero() {
		params.CheckoutDate = params.CheckinDate
	}

	review := &domain.WorkspaceReview{
		Workspace: *ws,
		Params:    params,
		Price:     domain.NewPriceBreakdown(ws.DailyRate, params.Nights(), params.Room),
		Center:    domain.DefaultMapCenter,
	}

	if s.geocoder == nil || ws.Location == nil || ws.Location.FullAddress == "" {
		return review, nil
	}
	point, err := s.geocoder.Geocode(ctx, ws.Location.FullAddress)
	if err != nil {
		s.LogWarn(ctx, "Geocoding failed, review has no map pin",
			slog.String("error", err.Error()),
			slog.Int64("workspace_id", workspaceID))
		return review, nil
	}
	review.Center = *point
	review.Pin = &domain.MapPin{Address: ws.Location.FullAddress, Point: *point}
	return review, nil
}

// RememberUser stores the logged in user's id and role in the session.
func (s *searchService) RememberUser(ctx context.Context, session string, user *domain.User) error {
	if err := s.store.Set(ctx, session, domain.KeyUserID, strconv.FormatInt(user.UserID, 10)); err != nil {
		return fmt.Errorf("failed to remember user: %w", err)
	}
	if err := s.store.Set(ctx, session, domain.KeyUserRole, string(user.Role)); err != nil {
		return fmt.Errorf("failed to remember user role: %w", err)
	}
	return nil
}
