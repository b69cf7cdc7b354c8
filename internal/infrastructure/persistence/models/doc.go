// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: BaseModel, SoftDeleteModel and the AutoMigrate list
// - catalog.go: ingredients, recipes, recipe lines, recipe matches
// - pantry.go: pantry items
// - profile.go: profiles
// - mealplan.go: meal plans and their recipe links
// - shopping.go: weekly shopping lists and their items
package models
