package nbastats

import (
	"fmt"
	"math"
	"strconv"
)

// response is the envelope shared by every stats.nba.com endpoint.
type response struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// set returns the result set called name.
func (r response) set(name string) (resultSet, error) {
	for _, rs := range r.ResultSets {
		if rs.Name == name {
			return rs, nil
		}
	}
	return resultSet{}, fmt.Errorf("nbastats: result set %q missing", name)
}

// rows pairs each raw row with the set's header index so columns are read by name.
func (rs resultSet) rows() []row {
	index := make(map[string]int, len(rs.Headers))
	for i, h := range rs.Headers {
		index[h] = i
	}
	out := make([]row, 0, len(rs.RowSet))
	for _, values := range rs.RowSet {
		out = append(out, row{index: index, values: values})
	}
	return out
}

type row struct {
	index  map[string]int
	values []any
}

func (r row) raw(col string) any {
	i, ok := r.index[col]
	if !ok || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

func (r row) str(col string) string {
	switch v := r.raw(col).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (r row) float(col string) float64 {
	switch v := r.raw(col).(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func (r row) int(col string) int {
	return int(math.Round(r.float(col)))
}
