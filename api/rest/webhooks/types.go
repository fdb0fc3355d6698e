package webhooks

// event types sent by the video provider
const (
	EventCallStarted = "call.started"
	EventCallEnded   = "call.ended"
)

// VideoEvent is the webhook payload from the video provider
type VideoEvent struct {
	Type string `json:"type" binding:"required"`
	Call struct {
		ID string `json:"id"`
	} `json:"call"`
}
