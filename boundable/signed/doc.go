// Package signed provides boundedness predicates over signed integers.
//
//	type Temperature = refined.Refinement[int16, signed.ClosedInterval[int16, boundable.SMinus50, boundable.S50]]
//	type Delta = refined.Refinement[int64, signed.NonZero[int64]]
package signed
