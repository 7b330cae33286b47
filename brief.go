// Package brief builds SEO content briefs from competitor pages.
// It extracts headings, metadata and paragraphs from raw HTML, aggregates
// them into corpus statistics, ranks fragments by semantic relevance to a
// target keyword, derives a sizing policy and assembles a generation prompt
// for a language model.
//
// This package contains domain types, the pure core algorithms and the
// interfaces of external collaborators following Ben Johnson's Standard
// Package Layout. Implementations live in subdirectories named after their
// primary dependency (e.g., goquery/, gemini/, openai/, fpdf/).
package brief
