package domain

// ImageKind names the record family an image belongs to.
type ImageKind string

const (
	// ImageKindHotel is the image of a lodging property.
	ImageKindHotel ImageKind = "hotel"
	// ImageKindStay is the image of a stay offering.
	ImageKindStay ImageKind = "stay"
)

// MaxImageRefLength is the longest image or thumbnail reference a record can
// hold (VARCHAR(100)).
const MaxImageRefLength = 100

// Valid reports whether k is a known kind.
func (k ImageKind) Valid() bool {
	return k == ImageKindHotel || k == ImageKindStay
}

// UploadDir is the storage directory original images and thumbnails of this
// kind are written to.
func (k ImageKind) UploadDir() string {
	return string(k) + "_images/"
}

// DerivableImage is implemented by records that carry an original image and a
// lazily derived thumbnail. References are relative storage paths; an empty
// reference means the file is absent.
type DerivableImage interface {
	ImageKind() ImageKind
	RecordID() int64

	ImageRef() string
	ThumbnailRef() string
	SetThumbnailRef(ref string)
}

// ImageRecord points at one record carrying a derivable image.
type ImageRecord struct {
	Kind ImageKind `json:"kind"`
	ID   int64     `json:"id"`
}
