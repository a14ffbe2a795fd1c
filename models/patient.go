package models

import "time"

// Patient represents a patient document.
type Patient struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"-" json:"password,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Gender       string    `bson:"gender,omitempty" json:"gender,omitempty"`
	BirthDate    string    `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Sanitize clears credential material before the patient leaves the service
// layer.
func (p *Patient) Sanitize() {
	p.Password = ""
	p.PasswordHash = ""
}
