// Package model defines the database models for the member service.
//
// This package contains GORM models registered with the dict registry, so
// every model can be rendered as an ordered dictionary and updated from
// one.
//
// # Core Models
//
//   - Member: a registered member, with a hashed password synonym and a
//     derived visibility attribute
//   - Keyword: a tag attached to members through the member_keywords
//     join table
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - members: member records, including a jsonb meta column
//   - keywords: unique tag words
//   - member_keywords: the many-to-many join between the two
package model
