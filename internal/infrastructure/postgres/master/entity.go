package master

// Instrument is one row of the Korean instrument master: the mapping from
// a 6-digit instrument code to its display name.
type Instrument struct {
	Code string
	Name string
}
