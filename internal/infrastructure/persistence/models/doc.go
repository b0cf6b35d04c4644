// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel shared by every table with a UUID key
//   - campaign.go: campaigns, webpage_sources, content_series, content_items
//   - usage.go: usage_counters, usage_events
//   - json.go: helpers for JSON array columns
package models
