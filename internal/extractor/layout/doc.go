// Package layout extracts structured career history from the visual
// layout of an exported profile document.
//
// Extraction is a pipeline of independent stages, each testable with
// synthetic element fixtures:
//
//  1. Decode: document bytes -> positioned text elements (go-fitz)
//  2. Reading order: sort by page, then vertical, then horizontal
//  3. Section segmentation: match header-sized elements against a small
//     fixed vocabulary ("Experience", "Education"); any other header
//     terminates the current section
//  4. Entry segmentation: font size signals entry structure within a
//     section (larger run = organization, then role, then detail lines)
//  5. Date parsing: "<month> <year> - <month> <year>" pairs, bare years,
//     and "Present" end markers
//
// The heuristics are tuned to one known layout family and make no
// attempt to handle arbitrary documents. A document where no name can
// be located is rejected with domain.ErrUnrecognizedLayout.
package layout
