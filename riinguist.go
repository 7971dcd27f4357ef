// Package riinguist provides a Riichi Mahjong glossary bot core.
// It scrapes terminology and yaku listings from riichi.wiki into an
// in-memory glossary, then answers free-text questions by fuzzy-matching
// them against glossary terms.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, toml/).
package riinguist
