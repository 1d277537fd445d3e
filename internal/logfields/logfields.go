// Package logfields declares canonical structured-log field names so key
// spelling cannot drift between packages.
package logfields

import "log/slog"

const (
	KeyRunID      = "run_id"
	KeyStage      = "stage"
	KeyFramework  = "framework"
	KeyIndustry   = "industry"
	KeyFeature    = "feature"
	KeyPage       = "page"
	KeyComponent  = "component"
	KeyProvider   = "provider"
	KeySection    = "section"
	KeyPath       = "path"
	KeyArtifact   = "artifact"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyOutcome    = "outcome"
	KeyError      = "error"
)

// Helpers return slog.Attr values; keeping each granular lets callers compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func Framework(f string) slog.Attr     { return slog.String(KeyFramework, f) }
func Industry(i string) slog.Attr      { return slog.String(KeyIndustry, i) }
func Feature(f string) slog.Attr       { return slog.String(KeyFeature, f) }
func Page(p string) slog.Attr          { return slog.String(KeyPage, p) }
func Component(c string) slog.Attr     { return slog.String(KeyComponent, c) }
func Provider(p string) slog.Attr      { return slog.String(KeyProvider, p) }
func Section(s string) slog.Attr       { return slog.String(KeySection, s) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Artifact(a string) slog.Attr      { return slog.String(KeyArtifact, a) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Outcome(o string) slog.Attr       { return slog.String(KeyOutcome, o) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
