// Package audit provides audit logging for member API operations.
//
// Events are emitted in RFC5424 syslog format and optionally persisted
// to a database when MEMBERD_AUDIT_DATABASE_URL is set.
//
// # Event Types
//
// The package defines event types for member operations:
//
//   - Member create events
//   - Member update events
//   - Member detail fetch events
//   - Member listing events
//
// # Usage
//
//	audit.Log(audit.MemberCreatedEvent{
//		MemberID: member.ID,
//		Email:    member.Email,
//		ClientIP: r.RemoteAddr,
//		Success:  true,
//	})
//
// Audit logging is enabled by default and can be disabled with
// MEMBERD_AUDIT_ENABLED=false.
package audit
