package response_models

type PushStatusResponse struct {
	Subscribed bool  `json:"subscribed"`
	Count      int64 `json:"count"`
}

type PushUnsubscribeResponse struct {
	OK      bool  `json:"ok"`
	Removed int64 `json:"removed"`
}

type HouseRulesDraftResponse struct {
	PropertyID string `json:"propertyId"`
	Draft      string `json:"draft"`
}
