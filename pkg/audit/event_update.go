package audit

import "fmt"

// MemberUpdatedEvent represents a member update audit event
type MemberUpdatedEvent struct {
	MemberID     int
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e MemberUpdatedEvent) MessageID() string {
	return "member-update"
}

func (e MemberUpdatedEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("updated member %d", e.MemberID)
	}
	msg := fmt.Sprintf("tried to update member %d", e.MemberID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MemberUpdatedEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MemberUpdatedEvent) Facility() int {
	return FacilityUser
}

func (e MemberUpdatedEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"member": fmt.Sprintf("%d", e.MemberID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "update",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
