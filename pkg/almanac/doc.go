// Package almanac reads the textual description of a remapping pipeline.
//
// The text form is a sequence of blocks separated by blank lines:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// The first block lists the seeds. Every later block names a stage and lists
// its entries as "destination source length". The same content can be given
// as YAML (see Document). Stages are built with remap.NewStage, so a parsed
// Almanac only ever holds validated stages.
package almanac
