package cmd

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// mustParseID parses a required int64 id argument, exiting via log.Fatalf
// on malformed input, matching the teacher's bad-input-exits-the-command
// convention.
func mustParseID(log *zap.SugaredLogger, raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		log.Fatalf("invalid id %q: %v", raw, err)
	}
	return id
}
