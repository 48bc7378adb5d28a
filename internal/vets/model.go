package vets

type Vet struct {
	ID   int64
	Name string
}
