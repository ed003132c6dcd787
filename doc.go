// Package main provides the entry point of the entity settings service.
// It serves, through a Fiber JSON API, which settings each STIX entity type
// allows, which stored settings apply to it and which attribute overrides and
// default values are configured. Rows are persisted with gorm and read through
// a process wide cache.
package main
