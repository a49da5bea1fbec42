package handler

type ContextKey string

var (
	SubCtxKey       ContextKey = "sub"
	SessionIDCtxKey ContextKey = "sessionID"
	MyRestaurantCtx ContextKey = "myRestaurant"
)
