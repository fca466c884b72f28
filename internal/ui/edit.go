package ui

// EditState tracks which habit, if any, is being renamed. It lives only in
// the view and is never persisted.
type EditState struct {
	id     int
	active bool
}

// Start begins editing habit id, replacing any other edit
func (e *EditState) Start(id int) {
	e.id = id
	e.active = true
}

// Cancel leaves edit mode
func (e *EditState) Cancel() {
	*e = EditState{}
}

// Active reports whether any habit is being edited
func (e EditState) Active() bool {
	return e.active
}

// Editing reports whether habit id is being edited
func (e EditState) Editing(id int) bool {
	return e.active && e.id == id
}

// ID returns the habit being edited; only meaningful when Active
func (e EditState) ID() int {
	return e.id
}
