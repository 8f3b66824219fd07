package catalog

// Record is implemented by every indexed record type.
type Record interface {
	// Key returns the canonical intervals-string of the record.
	Key() string
	// LabelList returns the category labels the record belongs to.
	LabelList() []string
	// Names returns every lookup name; the first is the preferred display name.
	Names() []string

	// clone returns a copy sharing no slices with the receiver.
	clone() Record
}

// ChordData describes one chord quality.
type ChordData struct {
	Intervals string   `yaml:"intervals" json:"intervals"`
	Labels    []string `yaml:"labels" json:"labels"`
	Short     string   `yaml:"short" json:"short"`
	Full      string   `yaml:"full" json:"full"`
	Symbol    string   `yaml:"symbol" json:"symbol"`
}

func (c ChordData) Key() string         { return c.Intervals }
func (c ChordData) LabelList() []string { return c.Labels }

// Names returns the full, short and symbol names in that order, skipping empty ones.
func (c ChordData) Names() []string {
	names := make([]string, 0, 3)
	for _, n := range []string{c.Full, c.Short, c.Symbol} {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

// PreferredName is the full name.
func (c ChordData) PreferredName() string { return preferred(c) }

func (c ChordData) clone() Record {
	c.Labels = append([]string(nil), c.Labels...)
	return c
}

// ScaleData describes one scale.
type ScaleData struct {
	Intervals string   `yaml:"intervals" json:"intervals"`
	Labels    []string `yaml:"labels" json:"labels"`
	NameList  []string `yaml:"names" json:"names"`
}

func (s ScaleData) Key() string         { return s.Intervals }
func (s ScaleData) LabelList() []string { return s.Labels }
func (s ScaleData) Names() []string     { return s.NameList }

// PreferredName is the first declared name.
func (s ScaleData) PreferredName() string { return preferred(s) }

func (s ScaleData) clone() Record {
	s.Labels = append([]string(nil), s.Labels...)
	s.NameList = append([]string(nil), s.NameList...)
	return s
}

func preferred(r Record) string {
	names := r.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}
