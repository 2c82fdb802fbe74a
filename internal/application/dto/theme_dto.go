package dto

import "github.com/jhoicas/comercio-dashboard/internal/domain/entity"

// ThemeDTO estado de presentación expuesto por GET/PUT /api/theme.
// En PUT los campos omitidos o vacíos conservan el valor vigente; Radius es
// puntero para poder distinguir "no enviado" de cero.
type ThemeDTO struct {
	Primary     string   `json:"primary"`
	Variant     string   `json:"variant"`
	Appearance  string   `json:"appearance"`
	Radius      *float64 `json:"radius"`
	FontSize    string   `json:"fontSize"`
	HeadingSize string   `json:"headingSize"`
	FontFamily  string   `json:"fontFamily"`
}

// FromTheme proyecta el estado del dominio.
func FromTheme(t entity.Theme) ThemeDTO {
	radius := t.Radius
	return ThemeDTO{
		Primary:     t.Primary,
		Variant:     t.Variant,
		Appearance:  t.Appearance,
		Radius:      &radius,
		FontSize:    t.FontSize,
		HeadingSize: t.HeadingSize,
		FontFamily:  t.FontFamily,
	}
}

// MergeInto superpone la petición sobre el tema vigente: solo los campos
// presentes sustituyen al valor actual.
func (d ThemeDTO) MergeInto(cur entity.Theme) entity.Theme {
	if d.Primary != "" {
		cur.Primary = d.Primary
	}
	if d.Variant != "" {
		cur.Variant = d.Variant
	}
	if d.Appearance != "" {
		cur.Appearance = d.Appearance
	}
	if d.Radius != nil {
		cur.Radius = *d.Radius
	}
	if d.FontSize != "" {
		cur.FontSize = d.FontSize
	}
	if d.HeadingSize != "" {
		cur.HeadingSize = d.HeadingSize
	}
	if d.FontFamily != "" {
		cur.FontFamily = d.FontFamily
	}
	return cur
}
