package postgres

import (
	"database/sql"
	"fmt"
	"time"
	"travel/pkg/domain"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v != 0}
}

// convertAll maps rows with conv, stopping at the first error.
func convertAll[S, D any](in []S, conv func(S) (D, error)) ([]D, error) {
	out := make([]D, 0, len(in))
	for _, v := range in {
		d, err := conv(v)
		if err != nil {
			return nil, err
		}

		out = append(out, d)
	}

	return out, nil
}

// mapAll maps rows with an infallible conv.
func mapAll[S, D any](in []S, conv func(S) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, conv(v))
	}

	return out
}

type PgUser struct {
	Email     string `db:"email"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`

	Passenger    bool `db:"a_passenger"`
	AirportAdmin bool `db:"an_airport_admin"`
	AirlineAdmin bool `db:"an_airline_admin"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func pgUserFromDomain(u domain.User) PgUser {
	return PgUser{
		Email:        string(u.Email),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Passenger:    u.Passenger,
		AirportAdmin: u.AirportAdmin,
		AirlineAdmin: u.AirlineAdmin,
	}
}

func (p PgUser) toDomain() domain.User {
	return domain.User{
		Email:        domain.Email(p.Email),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Passenger:    p.Passenger,
		AirportAdmin: p.AirportAdmin,
		AirlineAdmin: p.AirlineAdmin,
	}
}

type PgPassenger struct {
	Email   string `db:"email"`
	SSN     string `db:"ssn"`
	Address string `db:"address"`
}

func pgPassengerFromDomain(p domain.Passenger) PgPassenger {
	return PgPassenger{Email: string(p.Email), SSN: p.SSN, Address: p.Address}
}

func (p PgPassenger) toDomain() domain.Passenger {
	return domain.Passenger{Email: domain.Email(p.Email), SSN: p.SSN, Address: p.Address}
}

type PgAirportAdmin struct {
	Email   string `db:"email"`
	AdminID int64  `db:"admin_id"`
}

func pgAirportAdminFromDomain(a domain.AirportAdmin) PgAirportAdmin {
	return PgAirportAdmin{Email: string(a.Email), AdminID: a.AdminID}
}

func (p PgAirportAdmin) toDomain() domain.AirportAdmin {
	return domain.AirportAdmin{Email: domain.Email(p.Email), AdminID: p.AdminID}
}

type PgAirlineAdmin struct {
	Email      string `db:"email"`
	EmployeeID int64  `db:"employee_id"`
}

func pgAirlineAdminFromDomain(a domain.AirlineAdmin) PgAirlineAdmin {
	return PgAirlineAdmin{Email: string(a.Email), EmployeeID: a.EmployeeID}
}

func (p PgAirlineAdmin) toDomain() domain.AirlineAdmin {
	return domain.AirlineAdmin{Email: domain.Email(p.Email), EmployeeID: p.EmployeeID}
}

type PgCompany struct {
	Name       string         `db:"name"`
	AdminEmail sql.NullString `db:"admin_email"`
}

func pgCompanyFromDomain(c domain.Company) PgCompany {
	return PgCompany{Name: string(c.Name), AdminEmail: nullString(string(c.AdminEmail))}
}

func (p PgCompany) toDomain() domain.Company {
	return domain.Company{Name: domain.CompanyName(p.Name), AdminEmail: domain.Email(p.AdminEmail.String)}
}

type PgHotel struct {
	ID          int64  `db:"id" goqu:"defaultifempty"`
	Name        string `db:"name"`
	Location    string `db:"location"`
	CompanyName string `db:"company_name"`

	Image     sql.NullString `db:"image"`
	Thumbnail sql.NullString `db:"thumbnail"`
}

func pgHotelFromDomain(h domain.Hotel) PgHotel {
	return PgHotel{
		ID:          int64(h.ID),
		Name:        h.Name,
		Location:    h.Location,
		CompanyName: string(h.CompanyName),
		Image:       nullString(h.Image),
		Thumbnail:   nullString(h.Thumbnail),
	}
}

func (p PgHotel) toDomain() domain.Hotel {
	return domain.Hotel{
		ID:          domain.HotelID(p.ID),
		Name:        p.Name,
		Location:    p.Location,
		CompanyName: domain.CompanyName(p.CompanyName),
		Image:       p.Image.String,
		Thumbnail:   p.Thumbnail.String,
	}
}

type PgTransaction struct {
	ID             int64     `db:"id" goqu:"defaultifempty"`
	PassengerEmail string    `db:"passenger_email"`
	CompanyName    string    `db:"company_name"`
	Type           string    `db:"type"`
	Date           time.Time `db:"date" goqu:"skipinsert"`
}

func pgTransactionFromDomain(t domain.Transaction) PgTransaction {
	return PgTransaction{
		ID:             int64(t.ID),
		PassengerEmail: string(t.PassengerEmail),
		CompanyName:    string(t.CompanyName),
		Type:           t.Type,
	}
}

func (p PgTransaction) toDomain() domain.Transaction {
	return domain.Transaction{
		ID:             domain.TransactionID(p.ID),
		PassengerEmail: domain.Email(p.PassengerEmail),
		CompanyName:    domain.CompanyName(p.CompanyName),
		Type:           p.Type,
		Date:           p.Date,
	}
}

type PgStay struct {
	ID            int64         `db:"id" goqu:"defaultifempty"`
	Name          string        `db:"name"`
	Price         string        `db:"price"`
	Description   string        `db:"description"`
	HotelID       int64         `db:"hotel_id"`
	TransactionID sql.NullInt64 `db:"transaction_id"`

	Image     sql.NullString `db:"image"`
	Thumbnail sql.NullString `db:"thumbnail"`
}

func pgStayFromDomain(s domain.Stay) PgStay {
	return PgStay{
		ID:            int64(s.ID),
		Name:          s.Name,
		Price:         s.Price.String(),
		Description:   s.Description,
		HotelID:       int64(s.HotelID),
		TransactionID: nullInt64(int64(s.TransactionID)),
		Image:         nullString(s.Image),
		Thumbnail:     nullString(s.Thumbnail),
	}
}

func (p PgStay) toDomain() (domain.Stay, error) {
	price, err := domain.ParsePrice(p.Price)
	if err != nil {
		return domain.Stay{}, fmt.Errorf("could not parse price of stay %d: %w", p.ID, err)
	}

	return domain.Stay{
		ID:            domain.StayID(p.ID),
		Name:          p.Name,
		Price:         price,
		Description:   p.Description,
		HotelID:       domain.HotelID(p.HotelID),
		TransactionID: domain.TransactionID(p.TransactionID.Int64),
		Image:         p.Image.String,
		Thumbnail:     p.Thumbnail.String,
	}, nil
}

type PgAirline struct {
	Name     string `db:"name"`
	Location string `db:"location"`
}

func pgAirlineFromDomain(a domain.Airline) PgAirline {
	return PgAirline{Name: string(a.Name), Location: a.Location}
}

func (p PgAirline) toDomain() domain.Airline {
	return domain.Airline{Name: domain.AirlineName(p.Name), Location: p.Location}
}

type PgAirplane struct {
	ID           int64  `db:"pid" goqu:"defaultifempty"`
	Model        string `db:"model"`
	Manufacturer string `db:"manufacturer"`
	AirlineName  string `db:"airline_name"`

	EconomySeats        int64 `db:"economy_seats"`
	PremiumEconomySeats int64 `db:"premium_economy_seats"`
	BusinessSeats       int64 `db:"business_seats"`
	FirstSeats          int64 `db:"first_seats"`
}

func pgAirplaneFromDomain(a domain.Airplane) PgAirplane {
	return PgAirplane{
		ID:                  int64(a.ID),
		Model:               a.Model,
		Manufacturer:        a.Manufacturer,
		AirlineName:         string(a.AirlineName),
		EconomySeats:        int64(a.EconomySeats),
		PremiumEconomySeats: int64(a.PremiumEconomySeats),
		BusinessSeats:       int64(a.BusinessSeats),
		FirstSeats:          int64(a.FirstSeats),
	}
}

func (p PgAirplane) toDomain() domain.Airplane {
	return domain.Airplane{
		ID:                  domain.AirplaneID(p.ID),
		Model:               p.Model,
		Manufacturer:        p.Manufacturer,
		AirlineName:         domain.AirlineName(p.AirlineName),
		EconomySeats:        uint(p.EconomySeats),        //nolint: gosec
		PremiumEconomySeats: uint(p.PremiumEconomySeats), //nolint: gosec
		BusinessSeats:       uint(p.BusinessSeats),       //nolint: gosec
		FirstSeats:          uint(p.FirstSeats),          //nolint: gosec
	}
}

type PgDestination struct {
	Code    string `db:"airport_code"`
	City    string `db:"city"`
	Country string `db:"country"`
}

func pgDestinationFromDomain(d domain.Destination) PgDestination {
	return PgDestination{Code: string(d.Code), City: d.City, Country: d.Country}
}

func (p PgDestination) toDomain() domain.Destination {
	return domain.Destination{Code: domain.AirportCode(p.Code), City: p.City, Country: p.Country}
}

type PgFlight struct {
	Number          int64          `db:"flight_num"`
	AirlineName     string         `db:"airline_name"`
	Departure       time.Time      `db:"dep_time"`
	Arrival         time.Time      `db:"arrival_time"`
	DestinationCode sql.NullString `db:"dest_code"`
	AirplaneID      sql.NullInt64  `db:"plane_id"`
}

func pgFlightFromDomain(f domain.Flight) PgFlight {
	return PgFlight{
		Number:          int64(f.Number),
		AirlineName:     string(f.AirlineName),
		Departure:       f.Departure,
		Arrival:         f.Arrival,
		DestinationCode: nullString(string(f.DestinationCode)),
		AirplaneID:      nullInt64(int64(f.AirplaneID)),
	}
}

func (p PgFlight) toDomain() domain.Flight {
	return domain.Flight{
		Number:          domain.FlightNumber(p.Number),
		AirlineName:     domain.AirlineName(p.AirlineName),
		Departure:       p.Departure,
		Arrival:         p.Arrival,
		DestinationCode: domain.AirportCode(p.DestinationCode.String),
		AirplaneID:      domain.AirplaneID(p.AirplaneID.Int64),
	}
}

type PgFare struct {
	ID           int64  `db:"fare_id" goqu:"defaultifempty"`
	Price        string `db:"price"`
	Cabin        string `db:"cabin"`
	FlightNumber int64  `db:"flight_num"`
	Tickets      int64  `db:"tickets"`
}

func pgFareFromDomain(f domain.Fare) PgFare {
	return PgFare{
		ID:           int64(f.ID),
		Price:        f.Price.String(),
		Cabin:        f.Cabin,
		FlightNumber: int64(f.FlightNumber),
		Tickets:      int64(f.Tickets),
	}
}

func (p PgFare) toDomain() (domain.Fare, error) {
	price, err := domain.ParsePrice(p.Price)
	if err != nil {
		return domain.Fare{}, fmt.Errorf("could not parse price of fare %d: %w", p.ID, err)
	}

	return domain.Fare{
		ID:           domain.FareID(p.ID),
		Price:        price,
		Cabin:        p.Cabin,
		FlightNumber: domain.FlightNumber(p.FlightNumber),
		Tickets:      uint(p.Tickets), //nolint: gosec
	}, nil
}

type PgTicket struct {
	ID             int64          `db:"ticket_id" goqu:"defaultifempty"`
	SeatPosition   string         `db:"seat_pos"`
	PassengerEmail sql.NullString `db:"passenger_email"`
	FareID         int64          `db:"fare_id"`
}

func pgTicketFromDomain(t domain.Ticket) PgTicket {
	return PgTicket{
		ID:             int64(t.ID),
		SeatPosition:   t.SeatPosition,
		PassengerEmail: nullString(string(t.PassengerEmail)),
		FareID:         int64(t.FareID),
	}
}

func (p PgTicket) toDomain() domain.Ticket {
	return domain.Ticket{
		ID:             domain.TicketID(p.ID),
		SeatPosition:   p.SeatPosition,
		PassengerEmail: domain.Email(p.PassengerEmail.String),
		FareID:         domain.FareID(p.FareID),
	}
}

type PgAirportComplaint struct {
	ID             int64          `db:"complaint_id" goqu:"defaultifempty"`
	Description    string         `db:"description"`
	PassengerEmail string         `db:"passenger_email"`
	AdminEmail     sql.NullString `db:"admin_email"`
}

func pgAirportComplaintFromDomain(c domain.AirportComplaint) PgAirportComplaint {
	return PgAirportComplaint{
		ID:             int64(c.ID),
		Description:    c.Description,
		PassengerEmail: string(c.PassengerEmail),
		AdminEmail:     nullString(string(c.AdminEmail)),
	}
}

func (p PgAirportComplaint) toDomain() domain.AirportComplaint {
	return domain.AirportComplaint{
		ID:             domain.ComplaintID(p.ID),
		Description:    p.Description,
		PassengerEmail: domain.Email(p.PassengerEmail),
		AdminEmail:     domain.Email(p.AdminEmail.String),
	}
}

type PgAirlineComplaint struct {
	ID             int64          `db:"complaint_id" goqu:"defaultifempty"`
	Description    string         `db:"description"`
	PassengerEmail string         `db:"passenger_email"`
	AirlineName    string         `db:"airline_name"`
	AdminEmail     sql.NullString `db:"admin_email"`
}

func pgAirlineComplaintFromDomain(c domain.AirlineComplaint) PgAirlineComplaint {
	return PgAirlineComplaint{
		ID:             int64(c.ID),
		Description:    c.Description,
		PassengerEmail: string(c.PassengerEmail),
		AirlineName:    string(c.AirlineName),
		AdminEmail:     nullString(string(c.AdminEmail)),
	}
}

func (p PgAirlineComplaint) toDomain() domain.AirlineComplaint {
	return domain.AirlineComplaint{
		ID:             domain.ComplaintID(p.ID),
		Description:    p.Description,
		PassengerEmail: domain.Email(p.PassengerEmail),
		AirlineName:    domain.AirlineName(p.AirlineName),
		AdminEmail:     domain.Email(p.AdminEmail.String),
	}
}
