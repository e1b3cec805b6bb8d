package db

import "time"

// CrewMember is one member of a collector's crew. Entries with a blank
// first or last name are filtered out before persistence.
type CrewMember struct {
	FirstName string `firestore:"firstName" json:"firstName"`
	LastName  string `firestore:"lastName" json:"lastName"`
}

// Collector is a roster entry: a driver plus their crew.
// Driver is always the concatenation of FirstName and LastName.
type Collector struct {
	ID        string       `firestore:"-" json:"id"`
	FirstName string       `firestore:"firstName" json:"firstName"`
	LastName  string       `firestore:"lastName" json:"lastName"`
	Driver    string       `firestore:"driver" json:"driver"`
	Contact   string       `firestore:"contact" json:"contact"`
	Password  string       `firestore:"password,omitempty" json:"-"`
	Crew      []CrewMember `firestore:"crew" json:"crew"`
	Status    string       `firestore:"status" json:"status"`
}

// Coordinate is a single point on a route polyline.
type Coordinate struct {
	Latitude  float64 `firestore:"latitude" json:"latitude"`
	Longitude float64 `firestore:"longitude" json:"longitude"`
}

// Route is a scheduled collection assignment. Crew holds display names,
// not collector IDs; the conflict checker compares them by normalized form.
type Route struct {
	ID          string       `firestore:"-" json:"id"`
	Route       string       `firestore:"route" json:"route"`
	Driver      string       `firestore:"driver" json:"driver"`
	Crew        []string     `firestore:"crew" json:"crew"`
	Areas       []string     `firestore:"areas" json:"areas"`
	Time        string       `firestore:"time" json:"time"`
	EndTime     string       `firestore:"endTime" json:"endTime"`
	Type        string       `firestore:"type" json:"type"`
	Frequency   string       `firestore:"frequency" json:"frequency"`
	DayOff      string       `firestore:"dayOff" json:"dayOff"`
	Coordinates []Coordinate `firestore:"coordinates" json:"coordinates"`
	Color       string       `firestore:"color" json:"color"`
}

// Report is a citizen-submitted issue. Reports are created by the citizen
// app; the dashboard only toggles their status.
type Report struct {
	ID          string    `firestore:"-" json:"id"`
	Title       string    `firestore:"title" json:"title"`
	User        string    `firestore:"user" json:"user"`
	UserID      string    `firestore:"userId,omitempty" json:"userId,omitempty"`
	Type        string    `firestore:"type" json:"type"`
	Description string    `firestore:"description" json:"description"`
	Status      string    `firestore:"status" json:"status"`
	Address     string    `firestore:"address,omitempty" json:"address,omitempty"`
	Images      []string  `firestore:"images,omitempty" json:"images,omitempty"`
	SubmittedAt time.Time `firestore:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}

// Identity is the signed-in admin as resolved from a verified ID token.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// TruckPosition is one GPS ping from a collection truck, keyed by the
// route it is serving.
type TruckPosition struct {
	ID         string    `json:"id"`
	RouteID    string    `json:"routeId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recordedAt"`
}
