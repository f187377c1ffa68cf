package domain

import (
	"fmt"
	"time"
)

// CompanyName identifies a company.
type CompanyName string

// Company owns hotels and is administered by an airport admin.
type Company struct {
	Name CompanyName `json:"name"`
	// AdminEmail is empty when the admin account was removed.
	AdminEmail Email `json:"adminEmail,omitempty"`
}

func (c Company) String() string      { return string(c.Name) }
func (c Company) AbsoluteURL() string { return fmt.Sprintf("/%s/", c.Name) }

// HotelID identifies a hotel.
type HotelID int64

// Hotel is a lodging property offered by a company.
type Hotel struct {
	ID          HotelID     `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	CompanyName CompanyName `json:"company"`

	// Image is the relative storage path of the uploaded picture.
	Image string `json:"image,omitempty"`
	// Thumbnail is derived from Image on first access and cached.
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (h *Hotel) String() string      { return h.Name }
func (h *Hotel) AbsoluteURL() string { return fmt.Sprintf("/%d/", h.ID) }

func (h *Hotel) ImageKind() ImageKind       { return ImageKindHotel }
func (h *Hotel) RecordID() int64            { return int64(h.ID) }
func (h *Hotel) ImageRef() string           { return h.Image }
func (h *Hotel) ThumbnailRef() string       { return h.Thumbnail }
func (h *Hotel) SetThumbnailRef(ref string) { h.Thumbnail = ref }

// TransactionID identifies a transaction.
type TransactionID int64

// Transaction is a purchase made by a passenger from a company.
type Transaction struct {
	ID             TransactionID `json:"id"`
	PassengerEmail Email         `json:"passenger"`
	CompanyName    CompanyName   `json:"company"`
	Type           string        `json:"type"`
	// Date is assigned by storage when the transaction is first stored.
	Date time.Time `json:"date"`
}

func (t Transaction) String() string {
	return fmt.Sprintf("transaction %d by %s", t.ID, t.PassengerEmail)
}

func (t Transaction) AbsoluteURL() string { return fmt.Sprintf("/%d/", t.ID) }

// StayID identifies a stay.
type StayID int64

// Stay is a bookable offering of a hotel. A stay that was purchased links to
// its transaction.
type Stay struct {
	ID          StayID  `json:"id"`
	Name        string  `json:"name"`
	Price       Price   `json:"price"`
	Description string  `json:"description"`
	HotelID     HotelID `json:"hotel"`
	// TransactionID is zero while the stay has not been purchased.
	TransactionID TransactionID `json:"transaction,omitempty"`

	Image     string `json:"image,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (s *Stay) String() string      { return s.Name }
func (s *Stay) AbsoluteURL() string { return fmt.Sprintf("/%d/%d/", s.HotelID, s.ID) }

func (s *Stay) ImageKind() ImageKind       { return ImageKindStay }
func (s *Stay) RecordID() int64            { return int64(s.ID) }
func (s *Stay) ImageRef() string           { return s.Image }
func (s *Stay) ThumbnailRef() string       { return s.Thumbnail }
func (s *Stay) SetThumbnailRef(ref string) { s.Thumbnail = ref }
