// Package aidharvest converts archival finding aids into structured
// records. It fetches finding aid pages from a library aggregation
// service, reconstructs the series/sub-series/item hierarchy encoded in
// the page's heading markup, and exports a nested JSON document plus flat
// CSV views (leaf items and leaf context paths) for researchers.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package aidharvest
