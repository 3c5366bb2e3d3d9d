package upload

import (
	"fmt"
	"io"

	"github.com/dutchcoders/go-clamd"
)

// Scanner checks file content for malware
type Scanner interface {
	// Scan reports whether the content is clean
	Scan(r io.Reader) (bool, error)
}

// ClamdScanner streams files to a clamd daemon
type ClamdScanner struct {
	client *clamd.Clamd
}

// NewClamdScanner returns nil when addr is empty so scanning stays optional
func NewClamdScanner(addr string) Scanner {
	if addr == "" {
		return nil
	}
	return &ClamdScanner{client: clamd.NewClamd(addr)}
}

// Scan implements Scanner
func (s *ClamdScanner) Scan(r io.Reader) (bool, error) {
	abortChan := make(chan bool)
	defer close(abortChan)

	scanChan, err := s.client.ScanStream(r, abortChan)
	if err != nil {
		return false, err
	}

	clean := true
	for result := range scanChan {
		switch result.Status {
		case clamd.RES_OK:
		case clamd.RES_FOUND:
			clean = false
		default:
			return false, fmt.Errorf("clamd: %s %s", result.Status, result.Description)
		}
	}
	return clean, nil
}
