package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidate_AllPass(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/butter.json", validButter)

	out := env.run("validate")
	env.contains(out, "  PASS  data/butter.json (Butter)")
	env.contains(out, strings.Repeat("=", 50))
	env.contains(out, "Results: 1 passed, 0 failed, 0 warnings out of 1 files")
	env.contains(out, "All validations passed!")
}

func TestValidate_BareInvocationValidates(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/butter.json", validButter)

	out := env.run()
	env.contains(out, "  PASS  data/butter.json (Butter)")
	env.contains(out, "All validations passed!")
}

func TestValidate_ParseFailureFailsRun(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/butter.json", validButter)
	env.write("data/broken.json", `{definitely not json`)

	out, code := env.runExit("validate")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1\noutput: %s", code, out)
	}
	env.contains(out, "  FAIL  data/broken.json: Invalid JSON - ")
	env.contains(out, "  PASS  data/butter.json (Butter)")
	// The parse failure counts as failed, not merely skipped
	env.contains(out, "Results: 1 passed, 1 failed, 0 warnings out of 2 files")
	if strings.Contains(out, "All validations passed!") {
		t.Errorf("confirmation printed despite failure:\n%s", out)
	}
}

func TestValidate_WarningsDoNotFail(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/butter.json", validButter)
	env.write("data/salt.json", warnSalt)

	out, code := env.runExit("validate")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (warnings are soft)\noutput: %s", code, out)
	}
	env.contains(out, "  WARN  data/salt.json (Salt)")
	env.contains(out, "         - Warning: No sources cited")
	// Warned files count as passed
	env.contains(out, "Results: 2 passed, 0 failed, 1 warnings out of 2 files")
	env.contains(out, "All validations passed!")
}

func TestValidate_RuleViolations(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/mystery.json", `{
  "id": "Mystery_1",
  "name": {"fr": "Mystère"},
  "category": "meat",
  "composition": {"water": 101, "ph": 15},
  "physical": {}
}
`)

	out, code := env.runExit("validate")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1\noutput: %s", code, out)
	}
	env.contains(out, "  FAIL  data/mystery.json:")
	env.contains(out, "         - Invalid ID format: Mystery_1 (must match ^[a-z][a-z0-9_]*$)")
	env.contains(out, "         - name.en is required")
	env.contains(out, "         - Invalid category: meat. Must be one of: protein, fat, carbohydrate, liquid, seasoning, produce, dairy")
	env.contains(out, "         - composition.water must be 0-100, got 101")
	env.contains(out, "         - composition.ph must be 0-14, got 15")
	env.contains(out, "Results: 0 passed, 1 failed, 0 warnings out of 1 files")
}

func TestValidate_MissingDataDir(t *testing.T) {
	env := newTestEnv(t)
	env.write("elsewhere/butter.json", validButter) // data/ stays, point at a missing dir

	out, code := env.runExit("validate", "--data", "missing")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1\noutput: %s", code, out)
	}
	env.contains(out, "Data directory not found: missing")
}

func TestValidate_SortedOrder(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/zucchini.json", validButter)
	env.write("data/apple.json", validButter)

	out := env.run("validate", "--data", "data")
	apple := strings.Index(out, "data/apple.json")
	zucchini := strings.Index(out, "data/zucchini.json")
	if apple == -1 || zucchini == -1 || apple > zucchini {
		t.Errorf("files not reported in sorted order:\n%s", out)
	}
}

func TestValidate_JSONOutput(t *testing.T) {
	env := newTestEnv(t)
	env.write("data/butter.json", validButter)
	env.write("data/salt.json", warnSalt)

	out := env.run("validate", "-o", "json")

	var r struct {
		Results []struct {
			Path   string `json:"path"`
			Status string `json:"status"`
		} `json:"results"`
		Summary struct {
			Total  int `json:"total"`
			Passed int `json:"passed"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, out)
	}
	if r.Summary.Total != 2 || r.Summary.Passed != 2 {
		t.Errorf("summary = %+v, want total 2 passed 2", r.Summary)
	}
	if len(r.Results) != 2 {
		t.Errorf("results = %+v, want 2 entries", r.Results)
	}
}
