// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package kar_test

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/SAM0619TJ/Tiny-rasterizer/utility/kar"
)

var (
	testString1 = "idunvovkjnreovmegihjbrqlkmfrjnb"
	testString2 = "idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"
)

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	builder, err := kar.NewBuilder(kar.Header{
		Author:      "devblok",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer builder.Close()

	for name, contents := range files {
		if err := builder.Add(name, strings.NewReader(contents)); err != nil {
			t.Fatal(err)
		}
	}

	buf := bytes.NewBuffer([]byte{})
	written, err := builder.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if written != int64(buf.Len()) {
		t.Errorf("written %d, buffer holds %d", written, buf.Len())
	}
	return buf.Bytes()
}

func TestCreateAndRead(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"test":  testString1,
		"test2": testString2,
	})

	ar, err := kar.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	f, err := ar.Open("test")
	if err != nil {
		t.Fatal(err)
	}

	result, err := ioutil.ReadAll(f)
	if err != nil {
		t.Error(err)
	}

	if strings.Compare(string(result), testString1) != 0 {
		t.Error("test string does not match up")
	}
}

func TestCreateAndReadAll(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"test":  testString1,
		"test2": testString2,
	})

	ar, err := kar.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	for name, expected := range map[string]string{"test": testString1, "test2": testString2} {
		f, err := ar.ReadAll(name)
		if err != nil {
			t.Error(err)
			continue
		}
		if strings.Compare(string(f), expected) != 0 {
			t.Errorf("%s: test string does not match up", name)
		}
	}
}

func TestHeaderAndNames(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"b.frag": testString2,
		"a.vert": testString1,
	})

	ar, err := kar.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if ar.Header().Author != "devblok" || ar.Header().Version != 1 {
		t.Errorf("unexpected header %+v", ar.Header())
	}

	names := ar.Names()
	if len(names) != 2 || names[0] != "a.vert" || names[1] != "b.frag" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestMissingEntry(t *testing.T) {
	data := buildArchive(t, map[string]string{"test": testString1})

	ar, err := kar.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ar.ReadAll("nope"); err != kar.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenNotAnArchive(t *testing.T) {
	if _, err := kar.Open(bytes.NewReader([]byte("PK\x03\x04 definitely a zip"))); err != kar.ErrFileFormat {
		t.Errorf("expected ErrFileFormat, got %v", err)
	}

	if _, err := kar.Open(bytes.NewReader([]byte("KA"))); err != kar.ErrFileFormat {
		t.Errorf("expected ErrFileFormat for short input, got %v", err)
	}
}
