package blocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/scheduling"
	"staybook/pkg/timeutil"
)

type memoryRepository struct {
	records map[uuid.UUID]*Block
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{records: make(map[uuid.UUID]*Block)}
}

func (m *memoryRepository) Create(ctx context.Context, block *Block) error {
	if block.ID == uuid.Nil {
		block.ID = uuid.New()
	}
	m.records[block.ID] = block
	return nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*Block, error) {
	b, ok := m.records[id]
	if !ok {
		return nil, &scheduling.NotFoundError{Entity: "block", ID: id.String()}
	}
	return b, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return &scheduling.NotFoundError{Entity: "block", ID: id.String()}
	}
	delete(m.records, id)
	return nil
}

func (m *memoryRepository) ListInRange(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, resourceID *uuid.UUID) ([]Block, error) {
	return m.FindOverlapping(ctx, propertyID, resourceID, dateFrom, dateTo)
}

func (m *memoryRepository) FindOverlapping(ctx context.Context, propertyID uuid.UUID, resourceID *uuid.UUID, dateFrom, dateTo time.Time) ([]Block, error) {
	var out []Block
	for _, b := range m.records {
		if b.PropertyID != propertyID {
			continue
		}
		if resourceID != nil && b.ResourceID != nil && *b.ResourceID != *resourceID {
			continue
		}
		if !b.DateFrom.After(dateTo) && !b.DateTo.Before(dateFrom) {
			out = append(out, *b)
		}
	}
	return out, nil
}

// recordingGuard captures which guard surface the service consulted.
type recordingGuard struct {
	conflicts []scheduling.Conflict

	resourceCalls int
	propertyCalls int
	propertyID    uuid.UUID
	resourceID    uuid.UUID
	from          time.Time
	to            time.Time
}

func (g *recordingGuard) CheckOverlap(ctx context.Context, resourceID uuid.UUID, dateFrom, dateTo time.Time, excludeStatuses []string) ([]scheduling.Conflict, error) {
	g.resourceCalls++
	g.resourceID = resourceID
	g.from, g.to = dateFrom, dateTo
	return g.conflicts, nil
}

func (g *recordingGuard) CheckPropertyOverlap(ctx context.Context, propertyID uuid.UUID, dateFrom, dateTo time.Time, excludeStatuses []string) ([]scheduling.Conflict, error) {
	g.propertyCalls++
	g.propertyID = propertyID
	g.from, g.to = dateFrom, dateTo
	return g.conflicts, nil
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := timeutil.ParseDate(value)
	require.NoError(t, err)
	return date
}

func newBlockService(repo Repository, guard ReservationGuard) Service {
	svc := NewService(repo)
	svc.SetReservationGuard(guard)
	return svc
}

func TestCreateBlockPropertyWideConsultsGuard(t *testing.T) {
	propertyID := uuid.New()
	guard := &recordingGuard{conflicts: []scheduling.Conflict{{
		ID:       uuid.New().String(),
		Label:    "reservation RSV-20251220-ABCDEF (Ada)",
		DateFrom: "2025-12-24",
		DateTo:   "2025-12-27",
	}}}
	repo := newMemoryRepository()
	svc := newBlockService(repo, guard)

	// A holiday closure with no resource applies to the whole property, so
	// the guard must sweep every resource before it lands.
	_, err := svc.CreateBlock(context.Background(), CreateBlockRequest{
		PropertyID: propertyID,
		DateFrom:   "2025-12-24",
		DateTo:     "2025-12-26",
		Kind:       "holiday",
		Reason:     "christmas closure",
	})
	require.Error(t, err)

	var conflictErr *scheduling.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Contains(t, conflictErr.Conflicts[0].Label, "RSV-20251220-ABCDEF")

	assert.Equal(t, 1, guard.propertyCalls)
	assert.Equal(t, 0, guard.resourceCalls)
	assert.Equal(t, propertyID, guard.propertyID)
	// Occupancy query extends one day past the inclusive block end.
	assert.Equal(t, mustDate(t, "2025-12-24"), guard.from)
	assert.Equal(t, mustDate(t, "2025-12-27"), guard.to)

	assert.Empty(t, repo.records, "conflicting block must not be stored")
}

func TestCreateBlockResourceScopedConsultsGuard(t *testing.T) {
	propertyID := uuid.New()
	resourceID := uuid.New()
	guard := &recordingGuard{}
	repo := newMemoryRepository()
	svc := newBlockService(repo, guard)

	resp, err := svc.CreateBlock(context.Background(), CreateBlockRequest{
		PropertyID: propertyID,
		ResourceID: &resourceID,
		DateFrom:   "2025-09-01",
		DateTo:     "2025-09-02",
		Kind:       "maintenance",
		Reason:     "boiler service",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, guard.resourceCalls)
	assert.Equal(t, 0, guard.propertyCalls)
	assert.Equal(t, resourceID, guard.resourceID)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, KindMaintenance, resp.Kind)
}

func TestCreateBlockClearGuardSucceedsPropertyWide(t *testing.T) {
	guard := &recordingGuard{}
	repo := newMemoryRepository()
	svc := newBlockService(repo, guard)

	resp, err := svc.CreateBlock(context.Background(), CreateBlockRequest{
		PropertyID: uuid.New(),
		DateFrom:   "2025-12-24",
		DateTo:     "2025-12-26",
		Kind:       "holiday",
		Reason:     "christmas closure",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, guard.propertyCalls)
	assert.Nil(t, resp.ResourceID)
	assert.Len(t, repo.records, 1)
}

func TestCreateBlockRejectsOverlappingBlock(t *testing.T) {
	propertyID := uuid.New()
	repo := newMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), &Block{
		PropertyID: propertyID,
		DateFrom:   mustDate(t, "2025-12-20"),
		DateTo:     mustDate(t, "2025-12-25"),
		Kind:       KindHoliday,
		Reason:     "existing closure",
	}))
	svc := newBlockService(repo, &recordingGuard{})

	_, err := svc.CreateBlock(context.Background(), CreateBlockRequest{
		PropertyID: propertyID,
		DateFrom:   "2025-12-24",
		DateTo:     "2025-12-26",
		Kind:       "full_day",
		Reason:     "double booking the closure",
	})
	var conflictErr *scheduling.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Contains(t, conflictErr.Conflicts[0].Label, "existing closure")
}
