// Package schemas embeds the JSON Schemas for the program catalog and the
// candidate profile documents accepted by the CLI.
package schemas

import _ "embed"

// Catalog is the schema for a program catalog file.
//
//go:embed catalog.schema.json
var Catalog []byte

// Profile is the schema for a candidate profile file.
//
//go:embed profile.schema.json
var Profile []byte
