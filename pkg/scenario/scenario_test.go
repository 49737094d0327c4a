package scenario

import (
	"strings"
	"testing"
)

const fixture = `
- name: book prices
  document: '{"store":{"book":[{"price":8},{"price":13}]}}'
  path: "$.store.book[*].price"
  expect: [8, 13]
- name: missing key
  document: '{"a":1}'
  path: "$.missing"
  expect: []
`

func TestLoadParsesCases(t *testing.T) {
	cases, err := Load(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("Load returned %d cases, want 2", len(cases))
	}
	if cases[0].Name != "book prices" || cases[0].Path != "$.store.book[*].price" {
		t.Fatalf("cases[0] = %+v", cases[0])
	}
}

func TestRunReportsPassAndFail(t *testing.T) {
	cases, err := Load(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	outcomes := Run(cases)
	if len(outcomes) != 2 {
		t.Fatalf("Run returned %d outcomes, want 2", len(outcomes))
	}
	for _, o := range outcomes {
		if o.Err != nil {
			t.Fatalf("case %q: unexpected error: %v", o.Case.Name, o.Err)
		}
		if !o.Pass {
			t.Fatalf("case %q: got %v, want %v", o.Case.Name, o.Got, o.Case.Expect)
		}
	}
}

func TestRunReportsMismatch(t *testing.T) {
	cases, err := Load(strings.NewReader(`
- name: wrong expectation
  document: '{"a":1}'
  path: "$.a"
  expect: [2]
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	outcomes := Run(cases)
	if outcomes[0].Pass {
		t.Fatalf("expected case to fail its expectation")
	}
}

func TestRunReportsCompileError(t *testing.T) {
	cases, err := Load(strings.NewReader(`
- name: bad path
  document: '{"a":1}'
  path: "not a path"
  expect: []
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	outcomes := Run(cases)
	if outcomes[0].Err == nil {
		t.Fatalf("expected a compile error to be reported, not a silent failure")
	}
}
