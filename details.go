package startrace

// FnDetails identifies one compiled-function call site. Declare one per
// function, at package level, and share it by pointer across every frame
// pushed for that function; frames never own their details.
type FnDetails struct {
	Name     string
	Filename string
}
