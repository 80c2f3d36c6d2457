package models

// Credentials holds the two external API keys. Either may be empty;
// a missing key surfaces as a validation error when the operation that
// needs it is triggered, never earlier.
type Credentials struct {
	ChatAPIKey   string `json:"chat_api_key"`
	VisionAPIKey string `json:"vision_api_key"`
}
