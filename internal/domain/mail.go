package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	RestaurantName string `json:"restaurantName"`
	Username       string `json:"username"`
	TVURL          string `json:"tvUrl"`
}

type ResetPasswordMailData struct {
	RestaurantName string `json:"restaurantName"`
	OTP            string `json:"otp"`
	Expiration     int    `json:"expiration"`
}
