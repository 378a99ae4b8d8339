package domain

import "time"

type Person struct {
	ID        string
	Name      string
	Email     string
	Company   string
	CreatedAt time.Time
}
