package cmd

import (
	"strings"
	"testing"
)

func TestLs(t *testing.T) {
	t.Run("empty dataset", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("ls")
		env.contains(out, "No ingredients")
	})

	t.Run("basic listing", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("data/butter.json", validButter)
		env.write("data/salt.json", warnSalt)

		out := env.run("ls")
		env.contains(out, "ID")
		env.contains(out, "butter")
		env.contains(out, "Butter")
		env.contains(out, "salt")
		env.contains(out, "seasoning")
	})

	t.Run("category filter", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("data/butter.json", validButter)
		env.write("data/salt.json", warnSalt)

		out := env.run("ls", "-c", "dairy")
		env.contains(out, "butter")
		if strings.Contains(out, "salt") {
			t.Errorf("ls -c dairy contains salt, want excluded:\n%s", out)
		}
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		env := newTestEnv(t)

		out, code := env.runExit("ls", "-c", "meat")
		if code == 0 {
			t.Fatalf("ls -c meat exited 0, want failure\noutput: %s", out)
		}
		env.contains(out, "invalid category")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("data/butter.json", validButter)

		out := env.run("ls", "-o", "json")
		env.contains(out, `"id":"butter"`)
		env.contains(out, `"category":"dairy"`)
	})

	t.Run("malformed file skipped with note", func(t *testing.T) {
		env := newTestEnv(t)
		env.write("data/butter.json", validButter)
		env.write("data/broken.json", `{nope`)

		out := env.run("ls")
		env.contains(out, "butter")
		env.contains(out, "skipping data/broken.json")
	})
}
