package model

import "strings"

// Attribute identifies a category of derived facial metadata that must be
// requested explicitly on every detection call.
type Attribute string

const (
	// AttributeHeadPose requests yaw, pitch and roll of the head in degrees.
	AttributeHeadPose Attribute = "headPose"

	// AttributeBlur requests the blur level of the face region.
	AttributeBlur Attribute = "blur"

	// AttributeMask requests mask type and whether nose and mouth are covered.
	AttributeMask Attribute = "mask"
)

// String returns the wire name of the attribute.
func (a Attribute) String() string {
	return string(a)
}

// FixedAttributeSet returns the attributes requested by every facescan run:
// head pose, blur and mask, in that order.
// A new slice is returned on each call so callers may not alter the set.
func FixedAttributeSet() []Attribute {
	return []Attribute{
		AttributeHeadPose,
		AttributeBlur,
		AttributeMask,
	}
}

// JoinAttributes renders attributes as the comma-separated list expected by
// the returnFaceAttributes query parameter.
func JoinAttributes(attrs []Attribute) string {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}
