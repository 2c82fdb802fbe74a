package entity

// Apariencias soportadas por el tema.
const (
	AppearanceLight  = "light"
	AppearanceDark   = "dark"
	AppearanceSystem = "system"
)

// Theme estado de presentación global del proceso. FontFamily se valida contra
// la lista permitida al aplicarse (ver application/theme).
type Theme struct {
	Primary     string  `json:"primary"`
	Variant     string  `json:"variant"` // professional | tint | vibrant
	Appearance  string  `json:"appearance"`
	Radius      float64 `json:"radius"`
	FontSize    string  `json:"fontSize"`
	HeadingSize string  `json:"headingSize"`
	FontFamily  string  `json:"fontFamily"`
}
