// Package model defines the data structures shared by the facescan packages.
//
// This package contains the following main types:
//   - DetectedFace: One face reported by the face-detection service
//   - FaceAttributes: The optional attribute categories of a face
//   - Attribute: An attribute category that must be requested per call
//   - Analysis: The state of one analysis run flowing through the pipeline
//
// Every attribute category is optional. A category the caller did not request,
// or that the service did not populate, is nil, and the DetectedFace accessors
// report it with ErrAttributeMissing.
package model
