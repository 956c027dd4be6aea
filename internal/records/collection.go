package records

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"crackKeeper/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RecordLister
type RecordLister interface {
	ListRecords(ctx context.Context) ([]models.CrackRecord, error)
}

// Collection holds the full fetched record set, newest first, and exposes a
// visible prefix that grows page by page. LoadMore only slices what is already
// held; a new fetch happens solely on Refresh.
type Collection struct {
	lister   RecordLister
	pageSize int

	mu     sync.Mutex
	all    []models.CrackRecord
	page   int
	loaded bool
}

func NewCollection(lister RecordLister, pageSize int) *Collection {
	return &Collection{
		lister:   lister,
		pageSize: pageSize,
		page:     1,
	}
}

// Refresh fetches the complete set from the record store and rewinds the
// visible window to the first page.
func (c *Collection) Refresh(ctx context.Context) error {
	all, err := c.lister.ListRecords(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.all = all
	c.page = 1
	c.loaded = true

	return nil
}

func (c *Collection) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loaded
}

// Visible returns a copy of the current visible prefix.
func (c *Collection) Visible() []models.CrackRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.page * c.pageSize
	if end > len(c.all) {
		end = len(c.all)
	}

	visible := make([]models.CrackRecord, end)
	copy(visible, c.all[:end])

	return visible
}

func (c *Collection) LoadMore() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page*c.pageSize < len(c.all) {
		c.page++
	}
}

func (c *Collection) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page*c.pageSize < len(c.all)
}

func (c *Collection) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.all)
}

func (c *Collection) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.page
}

// ApplyUpdate patches the held record matching id after a remote update has
// already succeeded. It never calls the record store itself.
func (c *Collection) ApplyUpdate(id uuid.UUID, data models.CrackEditData) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.all {
		if c.all[i].ID != id {
			continue
		}

		c.all[i].Label = data.Label
		c.all[i].Description = data.Description
		c.all[i].Classification = data.Classification
		c.all[i].Location = data.Location
		c.all[i].Datetime = data.Datetime
		c.all[i].Length = data.Length
		c.all[i].Width = data.Width
		c.all[i].Depth = data.Depth

		return
	}
}

// ApplyDelete removes the held record matching id after a remote delete has
// already succeeded.
func (c *Collection) ApplyDelete(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.all {
		if c.all[i].ID == id {
			c.all = append(c.all[:i], c.all[i+1:]...)
			return
		}
	}
}
