package request_models

type PushKeys struct {
	P256dh string `json:"p256dh"`
	Auth   string `json:"auth"`
}

type PushSubscribeRequest struct {
	Endpoint string   `json:"endpoint" binding:"required"`
	Keys     PushKeys `json:"keys"`
}

type PushUnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}
