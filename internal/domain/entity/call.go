package entity

import "time"

// CallOutcome is the result of a logged call.
type CallOutcome string

const (
	CallSuccessful CallOutcome = "Successful"
	CallMissed     CallOutcome = "Missed"
	CallVoicemail  CallOutcome = "Voicemail"
	CallNoAnswer   CallOutcome = "No Answer"
)

// IsValid checks if the CallOutcome is a valid value.
func (o CallOutcome) IsValid() bool {
	switch o {
	case CallSuccessful, CallMissed, CallVoicemail, CallNoAnswer:
		return true
	default:
		return false
	}
}

// Call is a logged phone call with a client.
type Call struct {
	ID         string      `json:"id"`
	ClientName string      `json:"clientName"`
	AgentID    string      `json:"agentId"`
	DateTime   time.Time   `json:"dateTime"`
	Outcome    CallOutcome `json:"outcome"`
	Notes      string      `json:"notes"`
}
