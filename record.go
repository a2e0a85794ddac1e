package f1data

import "sort"

// Record is one flat row: field name to scalar value. Values keep whatever
// type the upstream JSON carried; nil marks a field the upstream omitted.
type Record map[string]interface{}

// RecordSet is an ordered list of records forming one logical table. Records
// share a schema by convention only; field presence may vary when upstream
// data is missing.
type RecordSet []Record

// Empty reports whether the set holds no records.
func (rs RecordSet) Empty() bool {
	return len(rs) == 0
}

// Columns returns the union of field names across all records, sorted for a
// stable header order.
func (rs RecordSet) Columns() []string {
	seen := make(map[string]bool)
	cols := []string{}
	for _, rec := range rs {
		for name := range rec {
			if !seen[name] {
				seen[name] = true
				cols = append(cols, name)
			}
		}
	}
	sort.Strings(cols)
	return cols
}
