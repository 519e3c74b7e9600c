package imagefile

import (
	"strconv"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"

	"github.com/nao1215/facescan/internal/model"
)

// applyExif fills the EXIF-derived fields of md from data, if any EXIF block exists.
func applyExif(md *model.ImageMetadata, data []byte) {
	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		return
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		return
	}

	md.HasEXIF = true
	applyExifEntries(md, entries)
}

// applyExifEntries copies the tags we care about. The first occurrence wins,
// so IFD0 values take precedence over the thumbnail IFD.
func applyExifEntries(md *model.ImageMetadata, entries []exif.ExifTag) {
	for _, entry := range entries {
		switch entry.TagName {
		case "Orientation":
			if md.Orientation == 0 {
				md.Orientation = parseOrientation(entry.Formatted)
			}
		case "Make":
			if md.CameraMake == "" {
				md.CameraMake = strings.TrimSpace(entry.Formatted)
			}
		case "Model":
			if md.CameraModel == "" {
				md.CameraModel = strings.TrimSpace(entry.Formatted)
			}
		}
	}
}

// parseOrientation accepts "6" as well as the list form "[6]".
// Values outside the EXIF range 1..8 are reported as 0.
func parseOrientation(s string) int {
	s = strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "[]"))
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[0]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 8 {
		return 0
	}
	return n
}
