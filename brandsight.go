// Package brandsight extracts a structured brand signal from a website's
// raw markup: title, description, color palette, fonts, headings, a body
// excerpt, a resolved logo, and a curated set of brand-representative
// images. The signal can then be turned into a full brand profile by a
// language model and rendered as a brand sheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, gin/).
package brandsight
