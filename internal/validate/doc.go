// Package validate implements the SID ingredient rule set and the batch
// checker that applies it to every file in the data directory.
//
// A record is validated as a loosely-typed mapping rather than a struct
// because the rules distinguish "field absent" from "field present but
// wrong" - a distinction encoding/json erases when decoding into structs.
//
// # Issues
//
// Validation produces an ordered list of issue strings. Hard errors fail
// the record; soft issues carry the literal "Warning" prefix and only mark
// it. Callers split the two with [Split] or test single issues with
// [IsWarning]. Rules are applied unconditionally and independently: a
// record can accumulate several errors and a warning in one pass.
package validate
