// Package dealscope provides a company discovery service for venture
// capital research. It serves a filterable company directory, list and
// saved-search management, an AI-powered enrichment pipeline that scrapes
// a company website and summarizes it via a hosted language model, and a
// chat relay backed by the same model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package dealscope
