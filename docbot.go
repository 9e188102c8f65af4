// Package docbot builds a keyword index over API documentation so a chat
// bot or CLI can answer "what is X?" lookups quickly.
//
// The input is the JSON dump of the yii2-apidoc generator: types (classes,
// traits, interfaces), each with methods, properties and constants. The
// output is a flat multi-map from a normalized keyword to every API item
// whose bare name normalizes to it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, jsonparser/, fsnotify/).
package docbot
