package tripservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	tripdb "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/repositories"
)

// ErrInvalidEntry marks schedule input that failed validation.
var ErrInvalidEntry = errors.New("invalid schedule entry")

// Lodging is one place the group stays, from the static trip dataset.
type Lodging struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	CheckIn  string `json:"check_in,omitempty"`
	CheckOut string `json:"check_out,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Dining is one restaurant or dinner plan, from the static trip dataset.
type Dining struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Night   string `json:"night,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ScheduleInput is the caller-supplied schedule entry data.
type ScheduleInput struct {
	Title    string    `json:"title"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"starts_at"`
	Notes    string    `json:"notes"`
}

// TripService serves trip info. Lodging and dining come from static JSON
// reference files loaded once at startup; the schedule lives in the
// database.
type TripService struct {
	repo    tripdb.Repository
	logger  *slog.Logger
	lodging []Lodging
	dining  []Dining
}

// NewTripService creates a TripService, loading the lodging and dining
// datasets from disk. Missing files are tolerated and leave the lists
// empty; a trip without dining plans is unusual but not broken.
func NewTripService(repo tripdb.Repository, lodgingFile, diningFile string, logger *slog.Logger) (*TripService, error) {
	s := &TripService{repo: repo, logger: logger}

	if err := loadDataset(lodgingFile, "lodging", &s.lodging); err != nil {
		return nil, err
	}
	if err := loadDataset(diningFile, "dining", &s.dining); err != nil {
		return nil, err
	}
	logger.Info("trip datasets loaded",
		slog.Int("lodging", len(s.lodging)),
		slog.Int("dining", len(s.dining)),
	)
	return s, nil
}

// loadDataset reads a {"<key>": [...]} JSON file into out.
func loadDataset(filename, key string, out any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s dataset: %w", key, err)
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("failed to parse %s dataset: %w", key, err)
	}
	raw, ok := wrapper[key]
	if !ok {
		return fmt.Errorf("%s dataset %q missing %q key", key, filename, key)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s entries: %w", key, err)
	}
	return nil
}

// Lodging returns the lodging reference list.
func (s *TripService) Lodging() []Lodging {
	return s.lodging
}

// Dining returns the dining reference list.
func (s *TripService) Dining() []Dining {
	return s.dining
}

// Schedule returns all schedule entries in start order.
func (s *TripService) Schedule(ctx context.Context) ([]tripdb.ScheduleEntry, error) {
	return s.repo.ListEntries(ctx)
}

// AddScheduleEntry creates a schedule entry.
func (s *TripService) AddScheduleEntry(ctx context.Context, in ScheduleInput) (*tripdb.ScheduleEntry, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", ErrInvalidEntry)
	}
	if in.StartsAt.IsZero() {
		return nil, fmt.Errorf("starts_at is required: %w", ErrInvalidEntry)
	}

	entry := &tripdb.ScheduleEntry{
		ID:       uuid.New(),
		Title:    strings.TrimSpace(in.Title),
		Location: strings.TrimSpace(in.Location),
		StartsAt: in.StartsAt,
		Notes:    in.Notes,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RemoveScheduleEntry deletes a schedule entry.
func (s *TripService) RemoveScheduleEntry(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id)
}
