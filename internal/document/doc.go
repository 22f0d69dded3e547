// Package document provides the value model for the records checked by the
// refined CLI.
//
// A document is a tree of Null, String, Int, Bool, Array and Object values
// decoded from JSON or YAML. There is no float type: numbers with a
// fraction or exponent are rejected at decode time, so every number a rule
// sees is an exact int64.
//
// document imports nothing internal.
package document
