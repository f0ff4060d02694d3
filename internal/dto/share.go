package dto

// ShareResponse carries a freshly minted share token
type ShareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
	Count int    `json:"count"`
}

// EnterSharedViewRequest activates the read-only shared view
type EnterSharedViewRequest struct {
	Token string `json:"token" validate:"required"`
}

// SharedViewStatusResponse reports the shared view state
type SharedViewStatusResponse struct {
	ReadOnly bool `json:"read_only"`
}
