package request_models

type CancelAtPeriodEndRequest struct {
	// nil means true
	CancelAtPeriodEnd *bool `json:"cancelAtPeriodEnd"`
}

func (r CancelAtPeriodEndRequest) Value() bool {
	if r.CancelAtPeriodEnd == nil {
		return true
	}
	return *r.CancelAtPeriodEnd
}

type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}
