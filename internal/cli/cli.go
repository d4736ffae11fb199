// Package cli implements noorctl, an offline companion to the sync engine.
// It works on activity exports and never talks to the database.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

type Context struct {
	Out io.Writer
	Now func() time.Time
}

type exportFile struct {
	UserID string             `json:"user_id"`
	Log    domain.ActivityLog `json:"log"`
}

// readLog accepts either the document served by GET /activity/export or a
// bare date-keyed log.
func readLog(path string) (domain.ActivityLog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	var doc exportFile
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Log != nil {
		return doc.Log, nil
	}

	var log domain.ActivityLog
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, fmt.Errorf("parse export %s: %w", path, err)
	}
	return log, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
