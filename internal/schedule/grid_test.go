package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "00:00", SlotLabel(0))
	assert.Equal(t, "00:30", SlotLabel(1))
	assert.Equal(t, "12:00", SlotLabel(24))
	assert.Equal(t, "23:30", SlotLabel(47))

	// 越界的槽位
	assert.Equal(t, "", SlotLabel(-1))
	assert.Equal(t, "", SlotLabel(48))
}

func TestLabelToSlotRoundTrip(t *testing.T) {
	for slot := int32(0); slot < SlotsPerDay; slot++ {
		got, ok := LabelToSlot(SlotLabel(slot))
		require.True(t, ok, "label %s", SlotLabel(slot))
		assert.Equal(t, slot, got)
	}
}

func TestLabelToSlotRejectsMalformedLabels(t *testing.T) {
	tests := []string{
		"",
		"9:00",  // 没有零填充
		" 9:00", // 空格补位也不行
		"+9:00", // 符号也不行
		"09:15", // 不在半点上
		"24:00",
		"aa:bb",
		"12.30",
		"12:30:00",
	}
	for _, label := range tests {
		_, ok := LabelToSlot(label)
		assert.False(t, ok, "label %q 不应该被接受", label)
	}
}

func TestWeekday(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday(0).Valid())
	assert.False(t, Weekday(8).Valid())

	assert.Equal(t, "Mon", Monday.Label())
	assert.Equal(t, "Sun", Sunday.Label())
	assert.Equal(t, "", Weekday(0).Label())
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(Monday, 0, 1))
	assert.NoError(t, ValidateRange(Sunday, 32, 36))

	assert.ErrorIs(t, ValidateRange(Weekday(0), 0, 1), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange(Weekday(8), 0, 1), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange(Monday, -1, 1), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange(Monday, 0, 48), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange(Monday, 10, 10), ErrInvalidRange) // 空区间
	assert.ErrorIs(t, ValidateRange(Monday, 20, 10), ErrInvalidRange) // 倒序
}
