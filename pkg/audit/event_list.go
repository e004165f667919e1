package audit

import "fmt"

// MemberListEvent represents a member listing audit event
type MemberListEvent struct {
	ClientIP     string
	Title        string
	Role         string
	Success      bool
	ErrorMessage string
}

func (e MemberListEvent) MessageID() string {
	return "member-list"
}

func (e MemberListEvent) Message() string {
	var filters string
	if e.Title != "" {
		filters += fmt.Sprintf(" title=%s", e.Title)
	}
	if e.Role != "" {
		filters += fmt.Sprintf(" role=%s", e.Role)
	}
	if e.Success {
		return "listed members" + filters
	}
	msg := "failed to list members" + filters
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e MemberListEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e MemberListEvent) Facility() int {
	return FacilityUser
}

func (e MemberListEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "list",
		},
	}
	if e.Title != "" || e.Role != "" {
		sd[SDIDSubject] = map[string]string{}
		if e.Title != "" {
			sd[SDIDSubject]["title"] = e.Title
		}
		if e.Role != "" {
			sd[SDIDSubject]["role"] = e.Role
		}
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
