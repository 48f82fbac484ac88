// Package logging provides the structured loggers the randcheck CLI
// reports through. Library packages do not log; run results flow back as
// values and only the tool surface turns them into output.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/shipq/randcheck/prop"
)

// PrettyJSONHandler pretty prints JSON records for terminal use.
type PrettyJSONHandler struct {
	*slog.JSONHandler
	writer io.Writer
}

func (h *PrettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make(map[string]interface{})
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	attrs["time"] = r.Time.Format(time.RFC3339)
	attrs["level"] = r.Level.String()
	attrs["msg"] = r.Message

	prettyJSON, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return err
	}

	_, err = h.writer.Write(append(prettyJSON, '\n'))
	return err
}

// NewPrettyJSONHandler creates a pretty JSON handler writing to w.
func NewPrettyJSONHandler(w io.Writer) *PrettyJSONHandler {
	return &PrettyJSONHandler{
		JSONHandler: slog.NewJSONHandler(w, nil),
		writer:      w,
	}
}

// ProdLogger emits compact JSON lines, for scripted or CI use.
var ProdLogger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// DevLogger emits indented JSON, for humans at a terminal.
var DevLogger = slog.New(NewPrettyJSONHandler(os.Stdout))

// LogResult logs the outcome of a property run. The seed is always
// included so any reported failure can be replayed; on failure the exact
// drawn inputs and the failing trial are attached.
func LogResult(logger *slog.Logger, name string, res prop.Result) {
	if res.Passed() {
		logger.Info("property_passed",
			"property", name,
			"seed", res.Seed,
			"trials", res.Trials,
		)
		return
	}
	logger.Error("property_failed",
		"property", name,
		"seed", res.Seed,
		"trial", res.Failure.Trial,
		"inputs", res.Failure.Inputs,
		"replay", prop.SeedEnv,
	)
}
