// Package report writes analysis results for people to read.
//
// Results are streamed: the face count first, then one block per face,
// then the path of the annotated image. ConsoleWriter renders them as the
// plain text printed on stdout:
//
//	2 faces detected.
//
//	Face number 1
//	 - Head Pose (Yaw): 1.5
//	 - Head Pose (Pitch): -2.25
//	 - Head Pose (Roll): 0.0
//	 - Blur: low
//	 - Mask: noMask
//	 - Nose and mouth covered: False
//	...
//
//	Results saved in faces_detected.jpg
package report
