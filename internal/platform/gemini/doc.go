// Package gemini implements generation.Connector and generation.Invoker on
// top of Google's Gemini API.
//
// This package is an infrastructure adapter: the gateway core only sees the
// generation interfaces, and everything specific to google.golang.org/genai
// stays here.
//
// Key components:
//
// 1. ClientFactory:
//   - Guards the API credential and reports a configuration error on every
//     call while it is missing
//   - Builds the genai client once and shares it between calls
//
// 2. Invoker:
//   - Translates an envelope into one GenerateContent request with a JSON
//     response constraint
//   - Extracts the raw text of the first candidate
//   - Reports blocked, empty and failed responses without retrying
//
// 3. Schema conversion:
//   - Maps schema.Schema trees onto genai.Schema, keeping field order
package gemini
