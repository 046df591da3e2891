package keymap

// Pos is a matrix coordinate.
type Pos struct {
	Row uint8
	Col uint8
}

// Record is one physical key event as delivered by the host.
type Record struct {
	Pos     Pos
	Pressed bool
}
