package models

import "time"

// Address holds a doctor's practice address.
type Address struct {
	Line1 string `bson:"line1" json:"line1"`
	Line2 string `bson:"line2,omitempty" json:"line2,omitempty"`
}

// Doctor represents a doctor document. SlotsBooked is owned by the
// reservation engine for mutation; everything else is profile data.
type Doctor struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email"`
	Password     string       `bson:"-" json:"password,omitempty"`
	PasswordHash string       `bson:"passwordHash" json:"-"`
	Speciality   string       `bson:"speciality" json:"speciality"`
	Degree       string       `bson:"degree" json:"degree"`
	Experience   string       `bson:"experience" json:"experience"`
	About        string       `bson:"about" json:"about"`
	Fees         float64      `bson:"fees" json:"fees"`
	Address      Address      `bson:"address" json:"address"`
	Available    bool         `bson:"available" json:"available"`
	Deleted      bool         `bson:"deleted,omitempty" json:"-"`
	SlotsBooked  SlotCalendar `bson:"slotsBooked" json:"slotsBooked"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
}

// Sanitize clears credential material before the doctor leaves the service
// layer.
func (d *Doctor) Sanitize() {
	d.Password = ""
	d.PasswordHash = ""
}
