package audit

import "fmt"

// MemberShownEvent represents a member detail fetch audit event
type MemberShownEvent struct {
	MemberID     int
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e MemberShownEvent) MessageID() string {
	return "member-show"
}

func (e MemberShownEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("fetched member %d", e.MemberID)
	}
	msg := fmt.Sprintf("tried to fetch member %d", e.MemberID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MemberShownEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MemberShownEvent) Facility() int {
	return FacilityUser
}

func (e MemberShownEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"member": fmt.Sprintf("%d", e.MemberID),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "show",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
