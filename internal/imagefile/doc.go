// Package imagefile loads the image that is sent to the face service and
// describes it for debug logging.
//
// Read returns the raw bytes unchanged; nothing is decoded or re-encoded
// before upload. Inspect is best effort and never fails.
package imagefile
