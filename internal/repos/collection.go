package repos

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	applog "medcatalog/internal/log"
)

var ErrNotFound = errors.New("record not found")

// Record is anything a Collection can hold.
type Record interface {
	RecordID() string
}

// Collection is the read-modify-write record store for one entity kind.
// Every operation holds mu for the whole load/compute/save cycle, so two
// requests never interleave on the same document.
type Collection[T Record] struct {
	mu  sync.Mutex
	doc Document
	now func() time.Time
}

func NewCollection[T Record](doc Document) *Collection[T] {
	return &Collection[T]{doc: doc, now: time.Now}
}

// NewID derives a compact id from the creation instant plus 24 random bits.
func NewID(now time.Time) string {
	u := uuid.New()
	return strconv.FormatInt(now.UnixMilli(), 36) + hex.EncodeToString(u[:3])
}

// List never fails on read: unreadable or malformed documents are logged and
// served as an empty collection.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		applog.Warn("store.read.fail", err, map[string]any{"kind": c.doc.Kind()})
		return []T{}, nil
	}
	return items, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	items, _ := c.List(ctx)
	for _, it := range items {
		if it.RecordID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Create appends the record returned by build, which receives a fresh id.
func (c *Collection[T]) Create(ctx context.Context, build func(id string, now time.Time) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	now := c.now()
	id := NewID(now)
	for taken(items, id) {
		id = NewID(now)
	}
	rec := build(id, now)
	items = append(items, rec)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies mutate to the record with id and persists the collection.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(rec *T, now time.Time)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, ErrNotFound
	}
	mutate(&items[i], c.now())
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	return items[i], nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, ErrNotFound
	}
	removed := items[i]
	items = append(items[:i], items[i+1:]...)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	return removed, nil
}

// load returns an I/O error as is, but treats malformed content as empty.
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, err := c.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		applog.Warn("store.corrupt", err, map[string]any{"kind": c.doc.Kind()})
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.doc.Kind(), err)
	}
	if err := c.doc.Save(ctx, b); err != nil {
		return fmt.Errorf("save %s: %w", c.doc.Kind(), err)
	}
	return nil
}

func indexOf[T Record](items []T, id string) int {
	for i, it := range items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}

func taken[T Record](items []T, id string) bool { return indexOf(items, id) >= 0 }
