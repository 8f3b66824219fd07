package catalog

import "fmt"

// Entry pairs a record with its preferred display name.
type Entry[T Record] struct {
	Name   string
	Record *T
}

// LabelGroup is one label with its records in declaration order.
type LabelGroup[T Record] struct {
	Label   string
	Entries []Entry[T]
}

// CheckFunc validates a record beyond the structural checks done by Build.
type CheckFunc[T Record] func(T) error

// Index is an immutable store of records with derived lookup structures. The records
// slice is the only copy of the data; every map holds positions into it.
//
// An Index is safe for concurrent readers once Build has returned.
type Index[T Record] struct {
	category string
	labels   []string
	records  []T
	byLabel  map[string][]int
	byName   map[string]int
	byKey    map[string]int
}

// Build indexes records under the declared label order. It fails with an
// *IndexIntegrityError when a name or intervals-string is claimed twice, when a record
// has no names or labels, uses an undeclared label, or fails check.
func Build[T Record](category string, labels []string, records []T, check CheckFunc[T]) (*Index[T], error) {
	idx := &Index[T]{
		category: category,
		labels:   append([]string(nil), labels...),
		records:  make([]T, len(records)),
		byLabel:  make(map[string][]int, len(labels)),
		byName:   make(map[string]int),
		byKey:    make(map[string]int, len(records)),
	}

	// Deep copy: later edits to the caller's table must not reach the index.
	for i, rec := range records {
		idx.records[i] = rec.clone().(T)
	}

	for _, label := range idx.labels {
		if label == "" {
			return nil, idx.integrity("", "empty label declared", nil)
		}
		if _, dup := idx.byLabel[label]; dup {
			return nil, idx.integrity(label, "label declared twice", nil)
		}
		idx.byLabel[label] = nil
	}

	for i, rec := range idx.records {
		key := rec.Key()
		if key == "" {
			return nil, idx.integrity(fmt.Sprintf("#%d", i), "record has no intervals", nil)
		}
		if prev, dup := idx.byKey[key]; dup {
			return nil, idx.integrity(key, fmt.Sprintf("intervals already registered by %q", preferred(idx.records[prev])), nil)
		}
		idx.byKey[key] = i

		if check != nil {
			if err := check(rec); err != nil {
				return nil, idx.integrity(key, "invalid record", err)
			}
		}

		names := rec.Names()
		if len(names) == 0 {
			return nil, idx.integrity(key, "record has no names", nil)
		}
		for _, name := range names {
			if prev, dup := idx.byName[name]; dup {
				if prev == i {
					return nil, idx.integrity(name, "name repeated within record "+key, nil)
				}
				return nil, idx.integrity(name, fmt.Sprintf("name claimed by %q and %q", idx.records[prev].Key(), key), nil)
			}
			idx.byName[name] = i
		}

		recLabels := rec.LabelList()
		if len(recLabels) == 0 {
			return nil, idx.integrity(key, "record has no labels", nil)
		}
		for _, label := range recLabels {
			members, declared := idx.byLabel[label]
			if !declared {
				return nil, idx.integrity(key, fmt.Sprintf("undeclared label %q", label), nil)
			}
			if len(members) > 0 && members[len(members)-1] == i {
				return nil, idx.integrity(key, fmt.Sprintf("label %q repeated", label), nil)
			}
			idx.byLabel[label] = append(members, i)
		}
	}

	return idx, nil
}

func (x *Index[T]) integrity(key, reason string, err error) error {
	return &IndexIntegrityError{Category: x.category, Key: key, Reason: reason, Err: err}
}

// Category returns the name the index was built under ("chord", "scale").
func (x *Index[T]) Category() string { return x.category }

// Len returns the number of records.
func (x *Index[T]) Len() int { return len(x.records) }

// Labels returns the declared labels in order.
func (x *Index[T]) Labels() []string {
	return append([]string(nil), x.labels...)
}

// Records returns every record in declaration order.
func (x *Index[T]) Records() []*T {
	out := make([]*T, len(x.records))
	for i := range x.records {
		out[i] = &x.records[i]
	}
	return out
}

// LabelData groups records by label, in declared label order and then declared record
// order. Labels without records are kept so the grouping is stable.
func (x *Index[T]) LabelData() []LabelGroup[T] {
	groups := make([]LabelGroup[T], 0, len(x.labels))
	for _, label := range x.labels {
		members := x.byLabel[label]
		group := LabelGroup[T]{Label: label, Entries: make([]Entry[T], 0, len(members))}
		for _, pos := range members {
			group.Entries = append(group.Entries, Entry[T]{
				Name:   preferred(x.records[pos]),
				Record: &x.records[pos],
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// ByLabelData returns label -> records without the per-entry structure.
func (x *Index[T]) ByLabelData() map[string][]*T {
	out := make(map[string][]*T, len(x.labels))
	for _, label := range x.labels {
		out[label] = x.ByLabel(label)
	}
	return out
}

// ByLabel returns the records of one label, or nil for an unknown label.
func (x *Index[T]) ByLabel(label string) []*T {
	members, ok := x.byLabel[label]
	if !ok {
		return nil
	}
	out := make([]*T, len(members))
	for i, pos := range members {
		out[i] = &x.records[pos]
	}
	return out
}

// Lookup resolves any of a record's names.
func (x *Index[T]) Lookup(name string) (*T, bool) {
	pos, ok := x.byName[name]
	if !ok {
		return nil, false
	}
	return &x.records[pos], true
}

// LookupIntervals resolves a canonical intervals-string.
func (x *Index[T]) LookupIntervals(key string) (*T, bool) {
	pos, ok := x.byKey[key]
	if !ok {
		return nil, false
	}
	return &x.records[pos], true
}

// NameCount returns the number of distinct lookup names.
func (x *Index[T]) NameCount() int { return len(x.byName) }
