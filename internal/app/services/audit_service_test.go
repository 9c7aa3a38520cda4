package services

import (
	"fmt"
	"testing"

	"github.com/servicehub/servicehub-core/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuditStore struct {
	entries   []models.AuditLog
	appendErr error
}

func (s *stubAuditStore) Append(entry *models.AuditLog) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *stubAuditStore) History(entityType, objectID string) ([]models.AuditLog, error) {
	var matched []models.AuditLog
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].EntityType == entityType && s.entries[i].ObjectID == objectID {
			matched = append(matched, s.entries[i])
		}
	}
	return matched, nil
}

func (s *stubAuditStore) Count() (int64, error) {
	return int64(len(s.entries)), nil
}

func (s *stubAuditStore) Page(limit, offset int) ([]models.AuditLog, error) {
	if offset >= len(s.entries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.entries) {
		end = len(s.entries)
	}
	return s.entries[offset:end], nil
}

func TestRecord_EntryShape(t *testing.T) {
	t.Parallel()

	store := &stubAuditStore{}
	svc := NewAuditService(store)

	info := models.RequestInfo{
		Actor:     "maria",
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.0",
	}

	err := svc.Record(info, models.AuditActionUpdate, "Client", "some-id",
		map[string]string{"name": "Old"},
		map[string]string{"name": "New"})

	require.NoError(t, err)
	require.Len(t, store.entries, 1)

	entry := store.entries[0]
	assert.Equal(t, "maria", entry.Actor)
	assert.Equal(t, models.AuditActionUpdate, entry.Action)
	assert.Equal(t, "Client", entry.EntityType)
	assert.Equal(t, "some-id", entry.ObjectID)
	require.NotNil(t, entry.OldValues)
	assert.JSONEq(t, `{"name":"Old"}`, *entry.OldValues)
	require.NotNil(t, entry.NewValues)
	assert.JSONEq(t, `{"name":"New"}`, *entry.NewValues)
	require.NotNil(t, entry.IPAddress)
	assert.Equal(t, "203.0.113.7", *entry.IPAddress)
	assert.Equal(t, "curl/8.0", entry.UserAgent)
}

func TestRecord_EmptyActorFallsBackToSystem(t *testing.T) {
	t.Parallel()

	store := &stubAuditStore{}
	svc := NewAuditService(store)

	err := svc.Record(models.RequestInfo{}, models.AuditActionCreate, "Quote", "q-1", nil, map[string]string{"status": "draft"})

	require.NoError(t, err)
	require.Len(t, store.entries, 1)
	assert.Equal(t, models.ActorSystem, store.entries[0].Actor)
	assert.Nil(t, store.entries[0].IPAddress)
}

func TestRecord_NilValuesMarshalToEmptyObject(t *testing.T) {
	t.Parallel()

	store := &stubAuditStore{}
	svc := NewAuditService(store)

	err := svc.Record(models.SystemRequestInfo(), models.AuditActionDelete, "Client", "c-1", map[string]string{"name": "Gone"}, nil)

	require.NoError(t, err)
	entry := store.entries[0]
	require.NotNil(t, entry.NewValues)
	assert.Equal(t, "{}", *entry.NewValues)
}

func TestRecordSafe_SwallowsStoreFailure(t *testing.T) {
	t.Parallel()

	store := &stubAuditStore{appendErr: fmt.Errorf("relation audit_logs does not exist")}
	svc := NewAuditService(store)

	assert.NotPanics(t, func() {
		svc.RecordSafe(models.SystemRequestInfo(), models.AuditActionCreate, "Client", "c-2", nil, map[string]string{"name": "X"})
	})
	assert.Empty(t, store.entries)
}

func TestGetHistory_ReturnsEntityEntries(t *testing.T) {
	t.Parallel()

	store := &stubAuditStore{}
	svc := NewAuditService(store)

	info := models.SystemRequestInfo()
	require.NoError(t, svc.Record(info, models.AuditActionCreate, "Client", "c-1", nil, map[string]string{"name": "A"}))
	require.NoError(t, svc.Record(info, models.AuditActionUpdate, "Client", "c-1", map[string]string{"name": "A"}, map[string]string{"name": "B"}))
	require.NoError(t, svc.Record(info, models.AuditActionCreate, "Quote", "q-1", nil, map[string]string{"status": "draft"}))

	entries, err := svc.GetHistory("Client", "c-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.AuditActionUpdate, entries[0].Action)
	assert.Equal(t, models.AuditActionCreate, entries[1].Action)
}

func TestGetAuditLogs_Pagination(t *testing.T) {
	t.Parallel()

	store := &stubAuditStore{}
	svc := NewAuditService(store)

	info := models.SystemRequestInfo()
	for i := 0; i < 25; i++ {
		require.NoError(t, svc.Record(info, models.AuditActionCreate, "Client", fmt.Sprintf("c-%d", i), nil, nil))
	}

	page, err := svc.GetAuditLogs(&models.PaginationRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 25, page.TotalItems)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrev)
	assert.Len(t, page.Items, 10)
}
