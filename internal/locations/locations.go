package locations

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"crackKeeper/internal/models"
)

var (
	ErrEmptyName = errors.New("location name cannot be empty")
	ErrExists    = errors.New("location already exists")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CustomLocationStore
type CustomLocationStore interface {
	SaveLocation(ctx context.Context, name string) (*models.CustomLocation, error)
	ListLocations(ctx context.Context) ([]models.CustomLocation, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}

// List merges the built-in location set with user-added entries. Names are
// trimmed and checked case-insensitively at add time only; stored names are
// used verbatim afterwards.
type List struct {
	store CustomLocationStore

	mu     sync.Mutex
	static []string
	custom []models.CustomLocation
}

func NewList(store CustomLocationStore) *List {
	static := make([]string, len(DefaultLocations))
	copy(static, DefaultLocations)

	return &List{
		store:  store,
		static: static,
	}
}

// Load fetches the custom entries from the store.
func (l *List) Load(ctx context.Context) error {
	custom, err := l.store.ListLocations(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.custom = custom

	return nil
}

// All returns the merged, sorted selectable location names.
func (l *List) All() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.mergedLocked()
}

func (l *List) mergedLocked() []string {
	merged := make([]string, 0, len(l.static)+len(l.custom))
	merged = append(merged, l.static...)
	for _, c := range l.custom {
		merged = append(merged, c.Name)
	}

	sort.Strings(merged)

	return merged
}

// Custom returns the user-added entries.
func (l *List) Custom() []models.CustomLocation {
	l.mu.Lock()
	defer l.mu.Unlock()

	custom := make([]models.CustomLocation, len(l.custom))
	copy(custom, l.custom)

	return custom
}

// Add creates a custom entry. The name is trimmed; empty names and
// case-insensitive duplicates of any existing name are rejected before the
// store is contacted.
func (l *List) Add(ctx context.Context, name string) (*models.CustomLocation, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	l.mu.Lock()
	for _, existing := range l.mergedLocked() {
		if strings.EqualFold(existing, trimmed) {
			l.mu.Unlock()
			return nil, ErrExists
		}
	}
	l.mu.Unlock()

	location, err := l.store.SaveLocation(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.custom = append(l.custom, *location)
	sort.Slice(l.custom, func(i, j int) bool { return l.custom[i].Name < l.custom[j].Name })
	l.mu.Unlock()

	return location, nil
}

// Remove deletes a custom entry by id. Built-in locations cannot be removed.
func (l *List) Remove(ctx context.Context, id uuid.UUID) error {
	if err := l.store.DeleteLocation(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.custom {
		if l.custom[i].ID == id {
			l.custom = append(l.custom[:i], l.custom[i+1:]...)
			break
		}
	}

	return nil
}

// IsCustom reports whether a name belongs to a user-added entry.
func (l *List) IsCustom(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, c := range l.custom {
		if c.Name == name {
			return true
		}
	}

	return false
}
