// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the rutelister pipeline.
// See docs/ARCHITECTURE § Data Model.
package types

// RouteMeta holds the route-level fields found on one manifest page.
// A field is the empty string when no label matched anywhere on the page.
// Metadata never carries across page boundaries.
type RouteMeta struct {
	// RouteNumber is the host route identifier (HOSTRUTE label).
	RouteNumber string `json:"route_number" yaml:"route_number"`

	// PortNumber is the loading-dock identifier (LÆSSEPORT label).
	PortNumber string `json:"port_number" yaml:"port_number"`

	// StartTime is the route start time (STARTTID label), H:MM or HH:MM.
	StartTime string `json:"start_time" yaml:"start_time"`

	// EndTime is the route end time (SLUTTID label).
	EndTime string `json:"end_time" yaml:"end_time"`

	// SettlementMinutes is the billable duration in minutes
	// (AFREGNINGSTID label), kept as the raw matched string.
	SettlementMinutes string `json:"settlement_minutes" yaml:"settlement_minutes"`
}

// StopLine is one manifest line matched as a delivery stop. The numeric
// columns between the opening-hours range and the arrival time are consumed
// by the matcher but not retained.
type StopLine struct {
	// ID is the five-digit store identifier at the start of the line.
	ID string `json:"id" yaml:"id"`

	// RawName is the store name as printed, before suffix normalization.
	RawName string `json:"raw_name" yaml:"raw_name"`

	// Arrival is the planned arrival time at the stop.
	Arrival string `json:"arrival" yaml:"arrival"`

	// Departure is the planned departure time at the stop.
	Departure string `json:"departure" yaml:"departure"`
}

// Address is a stop address recovered from the lines following a stop line.
// Any field may be empty when the lookahead window yields nothing.
type Address struct {
	Street     string `json:"street" yaml:"street"`
	PostalCode string `json:"postal_code" yaml:"postal_code"`
	City       string `json:"city" yaml:"city"`
}

// StopRecord is the final output unit: one store visit with its resolved
// address and the route metadata of the page it was found on.
type StopRecord struct {
	// StoreName is the normalized store name (trailing route-suffix token removed).
	StoreName string `json:"store_name" yaml:"store_name"`

	Street     string `json:"street" yaml:"street"`
	PostalCode string `json:"postal_code" yaml:"postal_code"`
	City       string `json:"city" yaml:"city"`

	// Arrival is the planned arrival time at the stop.
	Arrival string `json:"arrival" yaml:"arrival"`

	RouteNumber string `json:"route_number" yaml:"route_number"`
	PortNumber  string `json:"port_number" yaml:"port_number"`
	StartTime   string `json:"start_time" yaml:"start_time"`
	EndTime     string `json:"end_time" yaml:"end_time"`

	// SettlementHours is the settlement duration converted from minutes to
	// hours, rounded to two decimals. Nil when the page carried no numeric
	// settlement value.
	SettlementHours *float64 `json:"settlement_hours,omitempty" yaml:"settlement_hours,omitempty"`
}

// DocumentResult holds the outcome of processing one manifest document.
// A failed document reports its reason in Error and carries no records;
// failures never cross the document boundary into the rest of a batch.
type DocumentResult struct {
	// Filename is the original input name, used for output naming only.
	Filename string `json:"filename" yaml:"filename"`

	// Records lists the extracted stops in source order: page order first,
	// stop-line order within a page.
	Records []StopRecord `json:"records" yaml:"records"`

	// Pages is the number of pages the document split into.
	Pages int `json:"pages" yaml:"pages"`

	// Error records a document-level failure message. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the document could not be processed at all.
func (r DocumentResult) Failed() bool {
	return r.Error != ""
}

// Count returns the number of extracted records.
func (r DocumentResult) Count() int {
	return len(r.Records)
}
