package ped

// Axis limits shared by every chart. DN is plotted on x, PS on y, both on a
// logarithmic scale.
const (
	ChartDNMin = 1.0
	ChartDNMax = 10000.0
	ChartPSMin = 0.5
	ChartPSMax = 1000.0
)

// Orientation is the direction of a straight boundary segment.
type Orientation uint8

const (
	// Horizontal segments have constant PS.
	Horizontal Orientation = 0
	// Vertical segments have constant DN.
	Vertical Orientation = 1
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Segment is a straight threshold line.
// A horizontal segment sits at PS=At and spans DN in [From, To].
// A vertical segment sits at DN=At and spans PS in [From, To].
type Segment struct {
	Label       string      `json:"label" yaml:"label"`
	Orientation Orientation `json:"orientation" yaml:"orientation"`
	At          float64     `json:"at" yaml:"at"`
	From        float64     `json:"from" yaml:"from"`
	To          float64     `json:"to" yaml:"to"`
	Color       string      `json:"color,omitempty" yaml:"color,omitempty"`
	// Reference marks a threshold present in the table that does not change
	// the category on either side. Renderers draw it dashed.
	Reference bool `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// IsoProduct is the curve PS·DN = K drawn for DN in [DNFrom, DNTo].
type IsoProduct struct {
	Label  string  `json:"label" yaml:"label"`
	K      float64 `json:"k" yaml:"k"`
	DNFrom float64 `json:"dn_from" yaml:"dn_from"`
	DNTo   float64 `json:"dn_to" yaml:"dn_to"`
	Color  string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// PS returns the pressure on the curve at the given DN.
func (c IsoProduct) PS(dn float64) float64 {
	return c.K / dn
}

// Vertex is a polygon corner in chart coordinates.
type Vertex struct {
	DN float64 `json:"dn" yaml:"dn"`
	PS float64 `json:"ps" yaml:"ps"`
}

// Region is a shaded polygon.
type Region struct {
	Category Category `json:"category" yaml:"category"`
	Vertices []Vertex `json:"vertices" yaml:"vertices"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
}

// Label is a region caption placed at (DN, PS).
type Label struct {
	Text string  `json:"text" yaml:"text"`
	DN   float64 `json:"dn" yaml:"dn"`
	PS   float64 `json:"ps" yaml:"ps"`
}

// ChartSpec is the declarative geometry of a rule's boundaries.
type ChartSpec struct {
	Title    string       `json:"title" yaml:"title"`
	Segments []Segment    `json:"segments" yaml:"segments"`
	Curves   []IsoProduct `json:"curves" yaml:"curves"`
	Regions  []Region     `json:"regions,omitempty" yaml:"regions,omitempty"`
	Labels   []Label      `json:"labels" yaml:"labels"`
}

// HLine builds a horizontal segment at ps spanning dn in [from, to].
func HLine(label string, ps, from, to float64, color string) Segment {
	return Segment{Label: label, Orientation: Horizontal, At: ps, From: from, To: to, Color: color}
}

// VLine builds a vertical segment at dn spanning ps in [from, to].
func VLine(label string, dn, from, to float64, color string) Segment {
	return Segment{Label: label, Orientation: Vertical, At: dn, From: from, To: to, Color: color}
}
