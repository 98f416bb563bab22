package page

import (
	"html/template"

	"github.com/asherpoirier/website/internal/models"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="icon" aria-hidden="true">`

var glyphs = map[models.Icon]template.HTML{
	models.IconTv:           svg(`<rect width="20" height="15" x="2" y="7" rx="2" ry="2"/><polyline points="17 2 12 7 7 2"/>`),
	models.IconFilm:         svg(`<rect width="18" height="18" x="3" y="3" rx="2"/><path d="M7 3v18"/><path d="M3 7.5h4"/><path d="M3 12h18"/><path d="M3 16.5h4"/><path d="M17 3v18"/><path d="M17 7.5h4"/><path d="M17 16.5h4"/>`),
	models.IconClapperboard: svg(`<path d="M20.2 6 3 11l-.9-2.4c-.3-1.1.3-2.2 1.3-2.5l13.5-4c1.1-.3 2.2.3 2.5 1.3Z"/><path d="m6.2 5.3 3.1 3.9"/><path d="m12.4 3.4 3.1 4"/><path d="M3 11h18v8a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2Z"/>`),
	models.IconShield:       svg(`<path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10"/>`),
	models.IconSmartphone:   svg(`<rect width="14" height="20" x="5" y="2" rx="2" ry="2"/><path d="M12 18h.01"/>`),
	models.IconZap:          svg(`<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"/>`),
}

func svg(body string) template.HTML {
	return template.HTML(svgOpen + body + `</svg>`)
}

// Glyph returns the inline SVG for icon, or false for an icon outside the
// known set.
func Glyph(icon models.Icon) (template.HTML, bool) {
	g, ok := glyphs[icon]
	return g, ok
}
