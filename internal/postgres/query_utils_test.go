package postgres

import "testing"

func TestContainsPattern(t *testing.T) {
	table := []struct {
		label string
		in    string
		exp   string
	}{
		{label: "plain text", in: "sunset", exp: "%sunset%"},
		{label: "percent is literal", in: "100%", exp: `%100\%%`},
		{label: "underscore is literal", in: "a_b", exp: `%a\_b%`},
		{label: "backslash is literal", in: `a\b`, exp: `%a\\b%`},
	}
	for _, ts := range table {
		t.Run(ts.label, func(t *testing.T) {
			if got := containsPattern(ts.in); got != ts.exp {
				t.Fatalf("unexpected pattern: got %q, want %q", got, ts.exp)
			}
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := ToSnakeCase("ParentID"); got != "parent_id" {
		t.Fatalf("unexpected snake case: %q", got)
	}
	if got := ToSnakeCase("CreatedAt"); got != "created_at" {
		t.Fatalf("unexpected snake case: %q", got)
	}
}
