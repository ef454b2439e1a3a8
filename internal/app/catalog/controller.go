package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/navbug/storefront-core/internal/app/catalog/contracts"
	"github.com/navbug/storefront-core/internal/app/catalog/domain"
)

// Controller orchestrates the listing store against the remote catalog
// service. Every change to sort, search, category or filters resets
// pagination and requeries with replace semantics; LoadNextPage
// requeries with append semantics.
//
// Requeries may overlap: the caller can change a filter while an
// earlier query is still in flight. Each requery takes the next value
// of a monotonically increasing sequence and a response is applied only
// if its sequence is still the latest when it arrives. A stale response
// is discarded silently; it is expected behavior, not a fault. The
// superseded request is not aborted at the transport level, the reads
// are idempotent.
type Controller struct {
	store    *Store
	service  contracts.CatalogService
	pageSize int
	logger   *zap.Logger

	// seqMu serializes sequence issue and result application.
	seqMu  sync.Mutex
	latest uint64
}

// NewController creates a controller over the given store and service.
func NewController(store *Store, service contracts.CatalogService, pageSize int, logger *zap.Logger) *Controller {
	return &Controller{
		store:    store,
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// SetSortKey changes the listing order, resets to page 1 and requeries.
func (c *Controller) SetSortKey(ctx context.Context, key domain.SortKey) error {
	if err := key.Validate(); err != nil {
		return err
	}
	c.store.setQueryInput(func(s *QueryState) { s.SortKey = key })
	return c.requery(ctx, ModeReplace)
}

// SetSearchKeyword changes the search text, resets to page 1 and
// requeries. An empty keyword clears the search.
func (c *Controller) SetSearchKeyword(ctx context.Context, keyword string) error {
	c.store.setQueryInput(func(s *QueryState) { s.SearchKeyword = keyword })
	return c.requery(ctx, ModeReplace)
}

// SetCategory changes the category filter, resets to page 1 and
// requeries. The empty category means all categories.
func (c *Controller) SetCategory(ctx context.Context, cat domain.Category) error {
	if err := cat.Validate(); err != nil {
		return err
	}
	c.store.setQueryInput(func(s *QueryState) { s.Category = cat })
	return c.requery(ctx, ModeReplace)
}

// SetFilters replaces the filter set, resets to page 1 and requeries.
func (c *Controller) SetFilters(ctx context.Context, filters domain.Filters) error {
	c.store.setQueryInput(func(s *QueryState) { s.Filters = filters })
	return c.requery(ctx, ModeReplace)
}

// LoadNextPage fetches the next page and appends it to the listing.
// No-op when the service already said there is nothing more.
func (c *Controller) LoadNextPage(ctx context.Context) error {
	snap := c.store.Snapshot()
	if !snap.HasMore {
		return nil
	}
	return c.requeryPage(ctx, ModeAppend, snap, snap.Page+1)
}

// Refresh re-issues the current query from page 1 with replace
// semantics, e.g. after connectivity returns.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.requery(ctx, ModeReplace)
}

// requery queries page 1 of the store's current view.
func (c *Controller) requery(ctx context.Context, mode ApplyMode) error {
	snap := c.store.Snapshot()
	return c.requeryPage(ctx, mode, snap, 1)
}

// requeryPage delegates the captured view to the catalog service and
// applies the result unless a newer query was issued meanwhile. Query
// failures leave products and hasMore untouched and are returned to
// the caller; the controller never retries.
func (c *Controller) requeryPage(ctx context.Context, mode ApplyMode, snap QueryState, page int) error {
	seq := c.nextSeq()

	req := contracts.QueryRequest{
		SortKey:       snap.SortKey,
		SearchKeyword: snap.SearchKeyword,
		Category:      snap.Category,
		Filters:       snap.Filters,
		Page:          page,
		PageSize:      c.pageSize,
	}

	res, err := c.service.Query(ctx, req)
	if err != nil {
		c.logger.Error("catalog query failed",
			zap.Uint64("seq", seq),
			zap.Int("page", page),
			zap.Error(err))
		return fmt.Errorf("catalog query: %w", err)
	}

	if !c.applyIfLatest(seq, mode, page, res) {
		c.logger.Debug("stale catalog response discarded",
			zap.Uint64("seq", seq),
			zap.Int("page", page))
		return nil
	}

	c.logger.Info("catalog page applied",
		zap.Uint64("seq", seq),
		zap.Int("page", page),
		zap.Int("count", len(res.Products)),
		zap.Bool("has_more", res.HasMore))
	return nil
}

// nextSeq issues the next query sequence number.
func (c *Controller) nextSeq() uint64 {
	c.seqMu.Lock()
	defer c.seqMu.Unlock()
	c.latest++
	return c.latest
}

// applyIfLatest applies the result only when seq is still the latest
// issued sequence. The check and the store write happen under the same
// lock so a newer query cannot slip between them.
func (c *Controller) applyIfLatest(seq uint64, mode ApplyMode, page int, res *contracts.QueryResult) bool {
	c.seqMu.Lock()
	defer c.seqMu.Unlock()

	if seq != c.latest {
		return false
	}
	c.store.applyResult(mode, page, res.Products, res.HasMore)
	return true
}

// Snapshot returns the current listing state.
func (c *Controller) Snapshot() QueryState {
	return c.store.Snapshot()
}
