// Package compiler turns schema definitions, written in CUE or in YAML
// loaded through CUE, into rules.Schema values.
package compiler
