package request_models

type CreateRoomRequest struct {
	PropertyID string `json:"propertyId"`
	RoomTypeID string `json:"roomTypeId"`
	Name       string `json:"name"`
}

type HouseRulesDraftRequest struct {
	Notes    string `json:"notes"`
	Language string `json:"language"`
}
