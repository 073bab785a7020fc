package archive

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIBase = "https://api.github.com"

// storeDir is the directory within the remote repository that holds reports.
const storeDir = "Logs"

// StoreSink saves the report into a remote content store (GitHub contents
// API) under a collision-avoided numbered name.
type StoreSink struct {
	APIBase string // overridable for tests
	Repo    string // owner/name
	Token   string
	client  *http.Client
}

// NewStoreSink creates a content-store sink for the given repository.
func NewStoreSink(repo, token string) *StoreSink {
	return &StoreSink{
		APIBase: defaultAPIBase,
		Repo:    repo,
		Token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// storeEntry is the slice element returned by the directory listing.
type storeEntry struct {
	Name string `json:"name"`
}

// createRequest is the body of a contents-API create call.
type createRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
}

// NextSequence determines the next report number by counting same-prefixed
// entries in the destination directory. Single-run execution makes the
// count race-free in practice; on transport errors the caller falls back to
// a timestamp-derived name instead.
func (s *StoreSink) NextSequence(prefix string) (int, error) {
	listURL := fmt.Sprintf("%s/repos/%s/contents/%s", s.APIBase, s.Repo, storeDir)
	req, err := http.NewRequest("GET", listURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("list store dir: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Directory may not exist yet; start numbering fresh.
		return 1, nil
	}

	var entries []storeEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode store listing: %w", err)
	}

	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name, prefix) && strings.HasSuffix(e.Name, ".txt") {
			count++
		}
	}
	return count + 1, nil
}

// Push creates the report file in the store. The commit-style message names
// the originating run so shared storage stays attributable.
func (s *StoreSink) Push(filename, source string, report []byte) error {
	putURL := fmt.Sprintf("%s/repos/%s/contents/%s/%s",
		s.APIBase, s.Repo, storeDir, url.PathEscape(filename))

	body, err := json.Marshal(createRequest{
		Message: fmt.Sprintf("Add %s from %s", filename, source),
		Content: base64.StdEncoding.EncodeToString(report),
	})
	if err != nil {
		return fmt.Errorf("marshal create request: %w", err)
	}

	req, err := http.NewRequest("PUT", putURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push to store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("store returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

func (s *StoreSink) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+s.Token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}
