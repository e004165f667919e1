package audit

import "fmt"

// MemberCreatedEvent represents a member creation audit event
type MemberCreatedEvent struct {
	MemberID     int
	Email        string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e MemberCreatedEvent) MessageID() string {
	return "member-create"
}

func (e MemberCreatedEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("created member %d (%s)", e.MemberID, e.Email)
	}
	msg := fmt.Sprintf("failed to create member (%s)", e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MemberCreatedEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MemberCreatedEvent) Facility() int {
	return FacilityUser
}

func (e MemberCreatedEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"member": fmt.Sprintf("%d", e.MemberID),
			"email":  e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "create",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
