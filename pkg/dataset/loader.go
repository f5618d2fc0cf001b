package dataset

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads tab-separated interaction records into a Table.
// A zero-value Loader is usable; it opens files read-only and keeps no
// state across calls, so concurrent loads are safe.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path into a Table. Files ending in .zip are treated
// as an archive containing a single .tsv member, which is loaded transparently.
//
// A missing or unreadable file yields ErrFileAccess; structural problems
// (empty file, wrong delimiter, inconsistent field counts) yield ErrDataFormat.
// A header-only file succeeds with a zero-row table.
func (l *Loader) Load(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return l.loadArchive(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, FileAccessError("OpenFile", path, err)
	}
	defer f.Close()

	return l.LoadReader(f, path)
}

// LoadReader reads tab-separated records from r. The name is used only in
// error messages.
func (l *Loader) LoadReader(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, DataFormatError("ReadHeader", name, 0, errors.New("file is empty"))
	}
	if err != nil {
		return nil, DataFormatError("ReadHeader", name, 1, err)
	}

	// A single-column header almost always means the file uses a different
	// delimiter; report that instead of silently producing a useless table.
	if len(header) == 1 {
		if d, ok := guessDelimiter(header[0]); ok {
			return nil, DataFormatError("ReadHeader", name, 1,
				fmt.Errorf("expected tab-separated columns, header looks delimited by %q", d))
		}
	}

	table, err := NewTable(header)
	if err != nil {
		return nil, DataFormatError("ReadHeader", name, 1, err)
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			// csv reports inconsistent field counts per record
			return nil, DataFormatError("ReadRecord", name, line, err)
		}
		if err := table.AppendRow(record); err != nil {
			return nil, DataFormatError("ReadRecord", name, line, err)
		}
	}

	return table, nil
}

func (l *Loader) loadArchive(path string) (*Table, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, FileAccessError("OpenArchive", path, err)
		}
		return nil, DataFormatError("OpenArchive", path, 0, err)
	}
	defer archive.Close()

	var member *zip.File
	for _, f := range archive.File {
		if strings.EqualFold(filepath.Ext(f.Name), ".tsv") {
			if member != nil {
				return nil, DataFormatError("OpenArchive", path, 0,
					fmt.Errorf("archive contains more than one .tsv member (%s, %s)", member.Name, f.Name))
			}
			member = f
		}
	}
	if member == nil {
		return nil, DataFormatError("OpenArchive", path, 0, errors.New("archive contains no .tsv member"))
	}

	rc, err := member.Open()
	if err != nil {
		return nil, DataFormatError("OpenArchive", path, 0, err)
	}
	defer rc.Close()

	return l.LoadReader(rc, path+"!"+member.Name)
}

// guessDelimiter reports the separator a tab-less single-column header most
// likely uses. Column names never contain these characters, so a hit means
// the whole row was swallowed as one field.
func guessDelimiter(header string) (string, bool) {
	for _, d := range []string{",", ";", "|", " "} {
		if strings.Contains(header, d) {
			return d, true
		}
	}
	return "", false
}
