package schedule

import (
	"errors"
	"testing"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore 是 Store 的内存实现，failInsertAfterDelete 用来模拟
// “删除成功但插入失败”的场景。
type fakeStore struct {
	entries               map[int64][]*domain.Schedule
	nextID                int64
	failInsertAfterDelete bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[int64][]*domain.Schedule), nextID: 1}
}

func (s *fakeStore) ListSchedules(restaurantID int64) ([]*domain.Schedule, error) {
	out := make([]*domain.Schedule, len(s.entries[restaurantID]))
	copy(out, s.entries[restaurantID])
	return out, nil
}

func (s *fakeStore) ReplaceSchedules(restaurantID int64, entries []*domain.Schedule) error {
	// 与真实实现一致：先删除，再插入，两步之间没有事务
	s.entries[restaurantID] = nil

	if s.failInsertAfterDelete {
		return &domain.DataLossError{RestaurantID: restaurantID, Err: errors.New("connection reset")}
	}

	for _, entry := range entries {
		inserted := *entry
		inserted.ID = s.nextID
		s.nextID++
		s.entries[restaurantID] = append(s.entries[restaurantID], &inserted)
	}
	return nil
}

func TestDraftAddRejectsConflicts(t *testing.T) {
	draft := NewDraft(1, nil)
	assert.False(t, draft.Dirty())

	// 周一 16:00-18:00 播 A
	require.NoError(t, draft.Add(entry(Monday, 32, 36)))
	assert.True(t, draft.Dirty())

	// 周一 17:00-19:00 播 B 与 A 冲突
	err := draft.Add(entry(Monday, 34, 38))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, draft.Entries(), 1)

	// 调整为 18:00-19:00 后首尾相接，可以加入
	require.NoError(t, draft.Add(entry(Monday, 36, 38)))
	assert.Len(t, draft.Entries(), 2)
}

func TestDraftAddValidatesRange(t *testing.T) {
	draft := NewDraft(1, nil)

	assert.ErrorIs(t, draft.Add(entry(Weekday(0), 0, 1)), ErrInvalidRange)
	assert.ErrorIs(t, draft.Add(entry(Monday, 10, 10)), ErrInvalidRange)
	assert.False(t, draft.Dirty())
	assert.Empty(t, draft.Entries())
}

func TestDraftDeleteDay(t *testing.T) {
	persisted := []*domain.Schedule{
		entry(Monday, 32, 36),
		entry(Monday, 40, 42),
		entry(Tuesday, 20, 24),
	}
	draft := NewDraft(1, persisted)

	draft.DeleteDay(Monday)
	assert.True(t, draft.Dirty())
	require.Len(t, draft.Entries(), 1)
	assert.Equal(t, int32(Tuesday), draft.Entries()[0].DayOfWeek)

	// 删除没有排播的天不会弄脏草稿
	clean := NewDraft(1, persisted)
	clean.DeleteDay(Sunday)
	assert.False(t, clean.Dirty())
}

func TestDraftDiscard(t *testing.T) {
	persisted := []*domain.Schedule{entry(Monday, 32, 36)}
	draft := NewDraft(1, persisted)

	require.NoError(t, draft.Add(entry(Tuesday, 20, 24)))
	draft.DeleteDay(Monday)
	require.True(t, draft.Dirty())

	draft.Discard()
	assert.False(t, draft.Dirty())
	require.Len(t, draft.Entries(), 1)
	assert.Equal(t, int32(Monday), draft.Entries()[0].DayOfWeek)
}

func TestDraftCommit(t *testing.T) {
	store := newFakeStore()

	draft := NewDraft(1, nil)
	require.NoError(t, draft.Add(entry(Monday, 32, 36)))
	require.NoError(t, draft.Add(entry(Tuesday, 20, 24)))

	require.NoError(t, draft.Commit(store))
	assert.False(t, draft.Dirty())

	// 提交后草稿带上了数据库分配的 id
	require.Len(t, draft.Entries(), 2)
	for _, e := range draft.Entries() {
		assert.NotZero(t, e.ID)
		assert.Equal(t, int64(1), e.RestaurantID)
	}

	persisted, err := store.ListSchedules(1)
	require.NoError(t, err)
	assert.Len(t, persisted, 2)

	// 没有修改时再次提交是无害的
	require.NoError(t, draft.Commit(store))
	assert.Len(t, draft.Entries(), 2)
}

func TestDraftCommitDataLoss(t *testing.T) {
	store := newFakeStore()

	// 先保存一份正常的排播
	draft := NewDraft(1, nil)
	require.NoError(t, draft.Add(entry(Monday, 32, 36)))
	require.NoError(t, draft.Commit(store))

	// 第二次保存时删除成功但插入失败
	store.failInsertAfterDelete = true
	require.NoError(t, draft.Add(entry(Tuesday, 20, 24)))

	err := draft.Commit(store)
	require.Error(t, err)

	dataLossErr := &domain.DataLossError{}
	require.ErrorAs(t, err, &dataLossErr)
	assert.Equal(t, int64(1), dataLossErr.RestaurantID)

	// 持久化状态已经被清空，但草稿完整保留，用户可以重新保存
	persisted, listErr := store.ListSchedules(1)
	require.NoError(t, listErr)
	assert.Empty(t, persisted)
	assert.True(t, draft.Dirty())
	assert.Len(t, draft.Entries(), 2)

	// 重新保存成功后恢复
	store.failInsertAfterDelete = false
	require.NoError(t, draft.Commit(store))
	assert.False(t, draft.Dirty())

	persisted, listErr = store.ListSchedules(1)
	require.NoError(t, listErr)
	assert.Len(t, persisted, 2)
}
