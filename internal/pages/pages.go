// Package pages lists the calculators offered on the start page.
package pages

// Welcome is the start page heading.
const Welcome = "Welcome to AWSomeMath - try our calculators"

// Page is one card on the start page.
type Page struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Image       string `json:"image"`
}

const (
	CalculatorPath = "/calculator"
	VolumesPath    = "/volumes"
)

var catalog = []Page{
	{
		Title:       "Calculator",
		Description: "Integer calculator for addition, subtraction, multiplication and division",
		Path:        CalculatorPath,
		Image:       "calculator.svg",
	},
	{
		Title:       "Volumes",
		Description: "Volume of cubes, spheres, cones and cylinders",
		Path:        VolumesPath,
		Image:       "volumes.svg",
	},
}

// Catalog returns the start page cards in display order.
func Catalog() []Page {
	out := make([]Page, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the page mounted at path.
func Find(path string) (Page, bool) {
	for _, p := range catalog {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}
