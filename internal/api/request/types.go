package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Capacity int `json:"capacity"`
}

// JoinRequest is the request body for joining a game. Payment is the
// fee sent with the request, in wei.
type JoinRequest struct {
	Payment uint64 `json:"payment"`
}

// DecideRequest is the request body for the continue/fold decision.
// Continuing players send the continue fee as payment; folding
// players send nothing.
type DecideRequest struct {
	Continuing bool   `json:"continuing"`
	Payment    uint64 `json:"payment,omitempty"`
}
