package domain

import (
	"fmt"
	"time"
)

// AirlineName identifies an airline.
type AirlineName string

// Airline operates airplanes and flights.
type Airline struct {
	Name     AirlineName `json:"name"`
	Location string      `json:"location"`
}

func (a Airline) String() string      { return string(a.Name) }
func (a Airline) AbsoluteURL() string { return fmt.Sprintf("/%s/", a.Name) }

// AirplaneID is the plane identifier (pid).
type AirplaneID int64

// Airplane is an aircraft of an airline with its seat layout per cabin.
type Airplane struct {
	ID           AirplaneID  `json:"pid"`
	Model        string      `json:"model"`
	Manufacturer string      `json:"manufacturer"`
	AirlineName  AirlineName `json:"airline"`

	EconomySeats        uint `json:"economySeats"`
	PremiumEconomySeats uint `json:"premiumEconomySeats"`
	BusinessSeats       uint `json:"businessSeats"`
	FirstSeats          uint `json:"firstSeats"`
}

// TotalSeats sums the seats of every cabin.
func (a Airplane) TotalSeats() uint {
	return a.EconomySeats + a.PremiumEconomySeats + a.BusinessSeats + a.FirstSeats
}

func (a Airplane) String() string      { return fmt.Sprintf("%s - %d", a.AirlineName, a.ID) }
func (a Airplane) AbsoluteURL() string { return fmt.Sprintf("/%d/", a.ID) }

// AirportCode is the three letter code of a destination airport.
type AirportCode string

// Destination is an airport flights arrive at.
type Destination struct {
	Code    AirportCode `json:"airportCode"`
	City    string      `json:"city"`
	Country string      `json:"country"`
}

func (d Destination) String() string      { return string(d.Code) }
func (d Destination) AbsoluteURL() string { return fmt.Sprintf("/%s/", d.Code) }

// FlightNumber identifies a flight.
type FlightNumber int64

// Flight is a scheduled departure of an airline.
type Flight struct {
	Number      FlightNumber `json:"flightNum"`
	AirlineName AirlineName  `json:"airline"`
	Departure   time.Time    `json:"depTime"`
	Arrival     time.Time    `json:"arrivalTime"`
	// DestinationCode is empty when the destination was removed.
	DestinationCode AirportCode `json:"dest,omitempty"`
	// AirplaneID is zero when the plane was removed.
	AirplaneID AirplaneID `json:"plane,omitempty"`
}

func (f Flight) String() string      { return fmt.Sprintf("%s - %d", f.AirlineName, f.Number) }
func (f Flight) AbsoluteURL() string { return fmt.Sprintf("/%d/", f.Number) }

// Duration is the scheduled time in the air.
func (f Flight) Duration() time.Duration { return f.Arrival.Sub(f.Departure) }

// FareID identifies a fare.
type FareID int64

// Fare is a priced cabin class on a flight with a number of tickets on sale.
type Fare struct {
	ID           FareID       `json:"fareId"`
	Price        Price        `json:"price"`
	Cabin        string       `json:"cabin"`
	FlightNumber FlightNumber `json:"flight"`
	Tickets      uint         `json:"tickets"`
}

// String renders the fare as "<flight> - <fare id>". The flight is shown by
// its number since the fare only references it.
func (f Fare) String() string      { return fmt.Sprintf("%d - %d", f.FlightNumber, f.ID) }
func (f Fare) AbsoluteURL() string { return fmt.Sprintf("/%d/%d/", f.FlightNumber, f.ID) }

// TicketID identifies a ticket.
type TicketID int64

// Ticket is a seat sold under a fare.
type Ticket struct {
	ID           TicketID `json:"ticketId"`
	SeatPosition string   `json:"seatPos"`
	// PassengerEmail is empty for unsold tickets or removed passengers.
	PassengerEmail Email  `json:"passenger,omitempty"`
	FareID         FareID `json:"fare"`
}

func (t Ticket) String() string      { return fmt.Sprintf("%d", t.ID) }
func (t Ticket) AbsoluteURL() string { return fmt.Sprintf("/%d/%d/", t.FareID, t.ID) }
