package vulnfeed

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tuckertucker/tkr-pkgcore/pkg/security"
)

// DefaultFeedURL is used when FetchCSV is called with an empty url.
const DefaultFeedURL = "https://raw.githubusercontent.com/wiz-sec-public/wiz-research-iocs/main/reports/shai-hulud-2-packages.csv"

// FetchCSV fetches a CSV vulnerability feed over HTTP. If url is empty,
// DefaultFeedURL is used.
func FetchCSV(url string) ([]byte, error) {
	if url == "" {
		url = DefaultFeedURL
	}
	return fetch(url)
}

func fetch(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vulnfeed: fetch %s: HTTP %d: %s", url, resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("vulnfeed: read response from %s: %w", url, err)
	}
	return data, nil
}

// ParseCSV parses a feed in "Package,Version,Severity" CSV form (severity
// column optional, defaulting to critical when absent — the teacher's
// original IoC list carried no severity column because every entry was
// critical-by-definition: a confirmed supply-chain compromise).
//
// Expected header + rows:
//
//	Package,Version,Severity
//	event-stream,3.3.6,critical
func ParseCSV(data []byte) ([]Entry, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &ParseError{Format: "csv", Err: err}
	}
	hasSeverityColumn := len(header) >= 3

	var entries []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Format: "csv", Err: err}
		}
		if len(record) < 2 {
			continue
		}

		pkg := strings.TrimSpace(record[0])
		version := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(record[1]), "="))
		version = strings.TrimSpace(version)
		if pkg == "" || version == "" {
			continue
		}

		severity := security.Critical
		if hasSeverityColumn && len(record) >= 3 && strings.TrimSpace(record[2]) != "" {
			severity = security.Severity(strings.ToLower(strings.TrimSpace(record[2])))
		}

		entries = append(entries, Entry{Package: pkg, Version: version, Severity: severity})
	}

	return entries, nil
}

// jsonEntry is the wire shape accepted by ParseJSON.
type jsonEntry struct {
	Package  string `json:"package"`
	Version  string `json:"version"`
	Severity string `json:"severity"`
	ID       string `json:"id"`
	Title    string `json:"title"`
}

// ParseJSON parses a feed expressed as a JSON array of entries.
func ParseJSON(data []byte) ([]Entry, error) {
	var raw []jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Format: "json", Err: err}
	}
	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		if r.Package == "" || r.Version == "" {
			continue
		}
		severity := security.Critical
		if r.Severity != "" {
			severity = security.Severity(strings.ToLower(r.Severity))
		}
		entries = append(entries, Entry{
			Package:  r.Package,
			Version:  r.Version,
			Severity: severity,
			ID:       r.ID,
			Title:    r.Title,
		})
	}
	return entries, nil
}

// LoadFromCSVURL fetches and parses a CSV feed directly into f.
func (f *Feed) LoadFromCSVURL(url string) error {
	data, err := FetchCSV(url)
	if err != nil {
		return err
	}
	entries, err := ParseCSV(data)
	if err != nil {
		return err
	}
	f.Load(entries)
	return nil
}
