package models

import (
	"encoding/json"
	"time"
)

type Appointment struct {
	ID int64 `json:"id"`

	StylistID int64  `json:"stylistId"`
	UserID    *int64 `json:"userId"`

	Purpose string `json:"purpose"`
	Date    string `json:"date"`
	Time    string `json:"time"`

	// Contact fields are independent of UserID so guests can book.
	CustomerName  string `json:"customerName,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	// Free-form references; not checked against the stylist catalogue.
	Services []json.RawMessage `json:"services"`

	Status string `json:"status"`

	// Both set or both nil.
	SuggestedDate *string `json:"suggestedDate"`
	SuggestedTime *string `json:"suggestedTime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a deep copy that shares no pointers with ap.
func (ap *Appointment) Clone() Appointment {
	out := *ap
	if ap.UserID != nil {
		id := *ap.UserID
		out.UserID = &id
	}
	if ap.SuggestedDate != nil {
		d := *ap.SuggestedDate
		out.SuggestedDate = &d
	}
	if ap.SuggestedTime != nil {
		t := *ap.SuggestedTime
		out.SuggestedTime = &t
	}
	out.Services = CloneServices(ap.Services)
	return out
}

// HasSuggestion reports whether a counter-proposal is pending.
func (ap *Appointment) HasSuggestion() bool {
	return ap.SuggestedDate != nil && ap.SuggestedTime != nil
}

// CloneServices deep-copies service references. The result is never nil.
func CloneServices(in []json.RawMessage) []json.RawMessage {
	out := make([]json.RawMessage, len(in))
	for i, raw := range in {
		out[i] = append(json.RawMessage(nil), raw...)
	}
	return out
}
