package domain

import "fmt"

// Email identifies a user account. Passenger and admin profiles are keyed by
// the email of the account they extend.
type Email string

// User is an account of the system. Roles are plain flags; the matching
// profile records (Passenger, AirportAdmin, AirlineAdmin) hold role-specific data.
type User struct {
	Email     Email  `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Passenger    bool `json:"passenger"`
	AirportAdmin bool `json:"airportAdmin"`
	AirlineAdmin bool `json:"airlineAdmin"`
}

func (u User) IsPassenger() bool    { return u.Passenger }
func (u User) IsAirportAdmin() bool { return u.AirportAdmin }
func (u User) IsAirlineAdmin() bool { return u.AirlineAdmin }

func (u User) String() string { return string(u.Email) }

// Passenger is the passenger profile of a user.
type Passenger struct {
	Email   Email  `json:"email"`
	SSN     string `json:"ssn"`
	Address string `json:"address"`
}

func (p Passenger) String() string      { return string(p.Email) }
func (p Passenger) AbsoluteURL() string { return emailURL(p.Email) }

// AirportAdmin is the profile of a user administering airport companies and
// resolving airport complaints.
type AirportAdmin struct {
	Email   Email `json:"email"`
	AdminID int64 `json:"adminId"`
}

func (a AirportAdmin) String() string      { return string(a.Email) }
func (a AirportAdmin) AbsoluteURL() string { return emailURL(a.Email) }

// AirlineAdmin is the profile of an airline employee resolving airline complaints.
type AirlineAdmin struct {
	Email      Email `json:"email"`
	EmployeeID int64 `json:"employeeId"`
}

func (a AirlineAdmin) String() string      { return string(a.Email) }
func (a AirlineAdmin) AbsoluteURL() string { return emailURL(a.Email) }

func emailURL(e Email) string { return fmt.Sprintf("/%s/", e) }

// displayOrNone renders an optional reference the way unresolved links are
// shown in the admin listings.
func displayOrNone(s string) string {
	if s == "" {
		return "None"
	}

	return s
}
