package schedule

import (
	"github.com/skylt-tv/signage-manager/backend/internal/domain"
)

// Store 是草稿提交时依赖的持久化接口，由 repository 实现。
// ReplaceSchedules 是“先全部删除、再全部插入”的整体替换，两步之间
// 没有事务保护（见 domain.DataLossError 的说明）。
type Store interface {
	ListSchedules(restaurantID int64) ([]*domain.Schedule, error)
	ReplaceSchedules(restaurantID int64, entries []*domain.Schedule) error
}

// Draft 是某个餐厅一次编辑会话中的未保存排班副本。
// 从已持久化的排班出发，经过若干次冲突检查通过的添加或按天删除后，
// 要么被丢弃，要么整体提交替换持久化状态。
type Draft struct {
	restaurantID int64
	baseline     []*domain.Schedule
	entries      []*domain.Schedule
	dirty        bool
}

func NewDraft(restaurantID int64, persisted []*domain.Schedule) *Draft {
	d := &Draft{
		restaurantID: restaurantID,
		baseline:     make([]*domain.Schedule, len(persisted)),
		entries:      make([]*domain.Schedule, len(persisted)),
	}
	copy(d.baseline, persisted)
	copy(d.entries, persisted)
	return d
}

func (d *Draft) RestaurantID() int64 {
	return d.restaurantID
}

func (d *Draft) Entries() []*domain.Schedule {
	return d.entries
}

// Dirty 表示草稿是否已经偏离最近一次已知的持久化状态。
func (d *Draft) Dirty() bool {
	return d.dirty
}

// Add 把一条新排播加入草稿。先校验槽位不变量，再做冲突检测，
// 两者任一失败时草稿保持原样，调用方可以直接重试。
func (d *Draft) Add(entry *domain.Schedule) error {
	if err := ValidateRange(Weekday(entry.DayOfWeek), entry.StartSlot, entry.EndSlot); err != nil {
		return err
	}
	if HasConflict(Weekday(entry.DayOfWeek), entry.StartSlot, entry.EndSlot, d.entries) {
		return ErrSlotConflict
	}

	entry.RestaurantID = d.restaurantID
	d.entries = append(d.entries, entry)
	d.dirty = true
	return nil
}

// DeleteDay 从草稿中移除某一天的全部排播。
// 注意这只作用于草稿；针对持久化状态的按天删除在 repository 中单独提供。
func (d *Draft) DeleteDay(day Weekday) {
	kept := d.entries[:0]
	removed := false
	for _, entry := range d.entries {
		if entry.DayOfWeek == int32(day) {
			removed = true
			continue
		}
		kept = append(kept, entry)
	}
	d.entries = kept
	if removed {
		d.dirty = true
	}
}

// Discard 丢弃所有未保存的修改，回到最近一次已知的持久化状态。
func (d *Draft) Discard() {
	d.entries = make([]*domain.Schedule, len(d.baseline))
	copy(d.entries, d.baseline)
	d.dirty = false
}

// Commit 把草稿整体替换为该餐厅的持久化排班，成功后重新拉取一次
// 以获得数据库分配的 id。提交失败时草稿不会被清空，调用方应把错误
// 原样呈现并允许用户重试保存；特别地，错误为 domain.DataLossError 时
// 持久化状态可能已经被清空。
func (d *Draft) Commit(store Store) error {
	if err := store.ReplaceSchedules(d.restaurantID, d.entries); err != nil {
		return err
	}

	fresh, err := store.ListSchedules(d.restaurantID)
	if err != nil {
		return err
	}

	d.baseline = make([]*domain.Schedule, len(fresh))
	copy(d.baseline, fresh)
	d.entries = make([]*domain.Schedule, len(fresh))
	copy(d.entries, fresh)
	d.dirty = false

	return nil
}
