package ui

// Viewer displays failed cases after a run
type Viewer interface {
	View(failures []Failure) error
}
