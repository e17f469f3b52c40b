package nbastats

import "testing"

func TestRowAccessorsToleratesTypesAndGaps(t *testing.T) {
	rs := resultSet{
		Headers: []string{"A", "B", "C", "D"},
		RowSet:  [][]any{{"12", 3.6, nil}},
	}
	r := rs.rows()[0]
	if r.int("A") != 12 || r.float("A") != 12 {
		t.Fatalf("expected numeric strings to parse")
	}
	if r.int("B") != 4 || r.str("B") != "3.6" {
		t.Fatalf("unexpected numeric conversions")
	}
	if r.str("C") != "" || r.float("C") != 0 {
		t.Fatalf("expected null to read as zero values")
	}
	if r.str("D") != "" || r.int("MISSING") != 0 {
		t.Fatalf("expected short rows and unknown columns to read as zero values")
	}
}

func TestResponseSetLookup(t *testing.T) {
	r := response{ResultSets: []resultSet{{Name: "One"}, {Name: "Two"}}}
	if rs, err := r.set("Two"); err != nil || rs.Name != "Two" {
		t.Fatalf("unexpected lookup %+v err=%v", rs, err)
	}
	if _, err := r.set("Three"); err == nil {
		t.Fatalf("expected missing set error")
	}
}
