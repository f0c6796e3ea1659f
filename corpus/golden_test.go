package corpus

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase pins the full decomposition of one word.
type goldenCase struct {
	Name      string           `json:"name"`
	Word      string           `json:"word"`
	Syllables []goldenSyllable `json:"syllables"`
}

type goldenSyllable struct {
	Text     string `json:"text"`
	Position string `json:"position"`
}

const goldenPath = "../data/golden/corpus.json"

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("corpus.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			rows, err := Decompose([]string{tc.Word})
			if err != nil {
				t.Fatalf("Decompose(%q): %v", tc.Word, err)
			}
			if len(rows) != len(tc.Syllables) {
				t.Fatalf("Decompose(%q): %d syllables, want %d: %v",
					tc.Word, len(rows), len(tc.Syllables), rows)
			}
			for i, row := range rows {
				want := tc.Syllables[i]
				if row.Text != want.Text || row.Pos.String() != want.Position {
					t.Errorf("syllable %d: got (%q, %s), want (%q, %s)",
						i, row.Text, row.Pos, want.Text, want.Position)
				}
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for i := range cases {
		rows, err := Decompose([]string{cases[i].Word})
		if err != nil {
			t.Fatalf("Decompose(%q): %v", cases[i].Word, err)
		}
		syls := make([]goldenSyllable, len(rows))
		for j, row := range rows {
			syls[j] = goldenSyllable{Text: row.Text, Position: row.Pos.String()}
		}
		cases[i].Syllables = syls
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden cases: %v", err)
	}
	if err := os.WriteFile(goldenPath, append(out, '\n'), 0o644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}
	t.Logf("regenerated %s with %d cases", goldenPath, len(cases))
}
