// Package track carries values along a railway: every value rides in a
// Result that is either a success, a failure or a cancellation, and steps
// run only while the result is still a success.
//
// It provides two layouts:
// - Chain: synchronous, fluent composition of Then/ThenTry/Map/Ensure/Finally
// - Turnout: a fan-out where a number of Locomotive lines pull results from
//   one channel, run an engine on each and push the outcome downstream
//
// Feed and Drain move slices in and out of channels. The number of lines can
// ride in the context (WithLines/Lines).
package track
