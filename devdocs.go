// Package devdocs provides an offline documentation reader for GitHub-hosted
// markdown. It registers repositories as topics, downloads branch archives,
// extracts their markdown files to a local directory layout, indexes the
// result in a local store, and exposes browsing with read-state tracking.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, github/, zip/).
package devdocs
