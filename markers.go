package md2play

// Marker vocabulary shared by both conversion directions. These are the
// only literals with structural meaning; everything else is opaque text.
// Matching is plain prefix detection, including the space in fenceSwift.
const (
	// fenceSwift opens a code block in Markdown form.
	fenceSwift = "``` swift"

	// fenceGeneric closes a code block in Markdown form. Any line starting
	// with three backticks that is not a fenceSwift line counts.
	fenceGeneric = "```"

	// markerProseOpen opens a prose region in playground form.
	markerProseOpen = "/*:"

	// markerProseClose closes a prose region in playground form.
	markerProseClose = "*/"

	// markerProseLine is a single-line prose marker in playground form.
	markerProseLine = "//:"
)

// mode tracks which side of a fence the transformer is on. It is derived
// from marker lines alone; a well-formed document alternates strictly.
type mode int

const (
	modeProse mode = iota
	modeCode
)
