// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free from
// ORM concerns.
//
// Persistence models carry all GORM annotations and table mappings, and each model
// provides ToDomain/FromDomain mappers used by the repositories.
package models
