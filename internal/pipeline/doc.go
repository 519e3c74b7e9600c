// Package pipeline runs one facescan analysis as an ordered list of steps.
//
// The default pipeline has three steps:
//
//  1. read_image: load the input file (and, with debug logging, its metadata)
//  2. detect: one call to the face service
//  3. render: print the results and save the annotated image
//
// Execution stops at the first failing step. The returned *StepError names
// the step and wraps its error, so callers can still test the cause with
// errors.Is (imagefile.ErrIO, faceapi.ErrRemoteCall, ...).
package pipeline
