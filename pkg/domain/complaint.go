package domain

import "fmt"

// ComplaintID identifies a complaint within its family.
type ComplaintID int64

// AirportComplaint is filed by a passenger and resolved by an airport admin.
type AirportComplaint struct {
	ID             ComplaintID `json:"complaintId"`
	Description    string      `json:"description"`
	PassengerEmail Email       `json:"passenger"`
	// AdminEmail is empty while nobody handles the complaint.
	AdminEmail Email `json:"admin,omitempty"`
}

func (c AirportComplaint) String() string {
	return complaintString(c.ID, c.PassengerEmail, c.AdminEmail)
}

func (c AirportComplaint) AbsoluteURL() string { return fmt.Sprintf("/%d/", c.ID) }

// AirlineComplaint is filed by a passenger against an airline.
type AirlineComplaint struct {
	ID             ComplaintID `json:"complaintId"`
	Description    string      `json:"description"`
	PassengerEmail Email       `json:"passenger"`
	AirlineName    AirlineName `json:"airline"`
	AdminEmail     Email       `json:"admin,omitempty"`
}

func (c AirlineComplaint) String() string {
	return complaintString(c.ID, c.PassengerEmail, c.AdminEmail)
}

func (c AirlineComplaint) AbsoluteURL() string { return fmt.Sprintf("/%d/", c.ID) }

func complaintString(id ComplaintID, passenger, admin Email) string {
	return fmt.Sprintf("complaint %d by %s, resolved by %s", id, passenger, displayOrNone(string(admin)))
}
