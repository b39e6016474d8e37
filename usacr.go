// Package usacr provides a client library for USA Cycling's legacy results
// website. It fetches event listings, permit pages, and race results, parses
// the semi-structured HTML into validated records, and exposes a CLI for
// human consumption.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package usacr

// BaseURL is the root of the legacy USA Cycling results site. Parsers use it
// to resolve relative links; the http package builds endpoint URLs from it.
const BaseURL = "https://legacy.usacycling.org"
