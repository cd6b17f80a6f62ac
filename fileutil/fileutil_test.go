package fileutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/deixis/chromologger/fileutil"
)

func TestAbsPath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := fileutil.AbsPath("logs/app.log")
	if err != nil {
		t.Fatal(err)
	}
	expect := filepath.Join(wd, "logs", "app.log")
	if got != expect {
		t.Errorf("expect %s, but got %s", expect, got)
	}

	dir, err := fileutil.AbsDir("logs/app.log")
	if err != nil {
		t.Fatal(err)
	}
	if expect := filepath.Join(wd, "logs"); dir != expect {
		t.Errorf("expect %s, but got %s", expect, dir)
	}
}

func TestOpenForAppend_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "app.log")

	for _, line := range []string{"one\n", "two\n"} {
		f, err := fileutil.OpenForAppend(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.WriteString(line); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if expect := "one\ntwo\n"; string(data) != expect {
		t.Errorf("expect %q, but got %q", expect, string(data))
	}
}

func TestWriteRawLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.log")

	if err := fileutil.WriteRawLine(path, "first\n"); err != nil {
		t.Fatal(err)
	}
	if err := fileutil.WriteRawLine(path, "second\n"); err != nil {
		t.Fatal(err)
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if expect := "first\nsecond\n"; string(data) != expect {
		t.Errorf("expect %q, but got %q", expect, string(data))
	}

	missing := filepath.Join(dir, "missing", "log.log")
	if err := fileutil.WriteRawLine(missing, "lost\n"); err == nil {
		t.Error("expect an error when the directory is missing")
	}
}
