package entity

// Project representa un proyecto u obra de construcción con código único.
type Project struct {
	ID       int64
	Code     string
	Name     string
	City     string
	Customer string
	Address  string
}
