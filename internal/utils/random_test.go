package utils

import (
	"strings"
	"testing"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"github.com/skylt-tv/signage-manager/backend/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomRestaurant(t *testing.T) {
	restaurant, err := GenerateRandomRestaurant("secret123", "example.com")
	require.NoError(t, err)

	assert.NotEmpty(t, restaurant.Name)
	assert.NotEmpty(t, restaurant.Username)
	assert.True(t, strings.HasSuffix(restaurant.Email, "@example.com"))
	assert.NotEqual(t, "secret123", restaurant.PasswordHash)
}

func TestGenerateRandomOTP(t *testing.T) {
	otp := GenerateRandomOTP()
	assert.Len(t, otp, 6)
}

func TestGenerateRandomID(t *testing.T) {
	id := GenerateRandomID(8, 8)
	assert.Len(t, id, 16)
}

// 生成的随机排播必须满足和手动保存一样的不变量：槽位合法且同一天内互不重叠。
func TestGenerateRandomSchedulesAreValidAndNonOverlapping(t *testing.T) {
	for i := 0; i < 20; i++ {
		entries := GenerateRandomSchedules(42, "https://cdn.example.com/public")

		for j, e := range entries {
			require.NoError(t, schedule.ValidateRange(schedule.Weekday(e.DayOfWeek), e.StartSlot, e.EndSlot))
			assert.Equal(t, int64(42), e.RestaurantID)
			assert.True(t, e.IsActive)
			assert.True(t, strings.HasPrefix(e.VideoURL, "https://cdn.example.com/public/"))

			// 与其余的排播逐条做冲突检测
			others := append(append([]*domain.Schedule{}, entries[:j]...), entries[j+1:]...)
			assert.False(t, schedule.HasConflict(schedule.Weekday(e.DayOfWeek), e.StartSlot, e.EndSlot, others))
		}
	}
}
