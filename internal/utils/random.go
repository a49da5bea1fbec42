package utils

import (
	"fmt"
	"math/rand"

	"github.com/mozillazg/go-pinyin"
	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"github.com/skylt-tv/signage-manager/backend/internal/schedule"
	"golang.org/x/crypto/bcrypt"
)

var commonRestaurantPrefixes = []string{
	"老王", "小李", "金龙", "四季", "福满", "湘江", "北欧", "渔家",
	"川香", "家宴", "品味", "悦来", "长安", "东来", "南山", "海港",
}
var commonRestaurantSuffixes = []string{
	"餐厅", "小馆", "食府", "酒家", "面馆", "烧烤", "火锅店", "茶餐厅",
}

func GenerateRandomRestaurantName() string {
	prefix := commonRestaurantPrefixes[rand.Intn(len(commonRestaurantPrefixes))]
	suffix := commonRestaurantSuffixes[rand.Intn(len(commonRestaurantSuffixes))]
	return prefix + suffix
}

var digits = "0123456789"

func GenerateUsernameFromRestaurantName(name string) string {
	pinyinArray := pinyin.LazyConvert(name, nil)
	username := ""

	for _, py := range pinyinArray {
		length := rand.Intn(len(py)) + 1
		username += py[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomRestaurant(password string, emailDomainName string) (*domain.Restaurant, error) {
	name := GenerateRandomRestaurantName()
	username := GenerateUsernameFromRestaurantName(name)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	restaurant := &domain.Restaurant{
		Username:     username,
		PasswordHash: string(passwordHash),
		Name:         name,
		Email:        username + "@" + emailDomainName,
	}

	return restaurant, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var sessionIDRunes = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = sessionIDRunes[rand.Intn(len(sessionIDRunes))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

var demoVideoNames = []string{
	"lunchmeny.mp4", "dagens_ratt.mp4", "helgerbjudande.mov",
	"dessertmeny.mp4", "drinkar.mov", "frukost.mp4",
}

// GenerateRandomSchedules 为某个餐厅生成一周的随机排播，
// 同一天内的区间保证互不重叠（顺序扫过槽位并随机留空隙）。
func GenerateRandomSchedules(restaurantID int64, videoURLPrefix string) []*domain.Schedule {
	entries := make([]*domain.Schedule, 0)

	for day := schedule.Monday; day <= schedule.Sunday; day++ {
		cursor := int32(rand.Intn(24)) // 从随机的上午槽位开始

		for cursor < schedule.SlotsPerDay-1 {
			length := int32(rand.Intn(4) + 1)
			end := cursor + length
			if end >= schedule.SlotsPerDay {
				break
			}

			if rand.Intn(2) == 0 {
				name := demoVideoNames[rand.Intn(len(demoVideoNames))]
				entries = append(entries, &domain.Schedule{
					RestaurantID: restaurantID,
					DayOfWeek:    int32(day),
					StartSlot:    cursor,
					EndSlot:      end,
					VideoName:    name,
					VideoURL:     videoURLPrefix + "/" + name,
					IsActive:     true,
				})
			}

			cursor = end + int32(rand.Intn(6)+1)
		}
	}

	return entries
}
