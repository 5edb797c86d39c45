package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(path, body string) error {
	return os.WriteFile(path, []byte(body), 0o600)
}

// relTo returns dir relative to the working directory, which is how LoadWithEnv resolves search paths.
func relTo(t *testing.T, dir string) string {
	t.Helper()

	pwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	rel, err := filepath.Rel(pwd, dir)
	if err != nil {
		t.Fatal(err)
	}

	return rel
}
