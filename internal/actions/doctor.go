package actions

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"squill.dev/squill/internal/config"
	"squill.dev/squill/internal/engine"
	squillerrors "squill.dev/squill/internal/errors"
	"squill.dev/squill/internal/runtime"
	"squill.dev/squill/internal/tui"
)

// DoctorOptions contains options for the doctor command
type DoctorOptions struct{}

// DoctorReport describes the health of a revision graph
type DoctorReport struct {
	Cycles          [][]string        // Each distinct cycle, as reported by Sequence
	DanglingParents map[string]string // Revision key -> missing parent key
	Heads           []string
	MultipleHeads   bool
}

// OK reports whether every revision can be sequenced from a single head
func (r DoctorReport) OK() bool {
	return len(r.Cycles) == 0 && len(r.DanglingParents) == 0 && !r.MultipleHeads
}

// Doctor checks the revision graph for cycles, missing parents and multiple heads
func Doctor(eng engine.RevisionReader) DoctorReport {
	report := DoctorReport{
		DanglingParents: make(map[string]string),
		Heads:           eng.Heads(),
	}
	report.MultipleHeads = len(report.Heads) > 1

	revisions := eng.AllRevisions()
	for _, rev := range revisions {
		if rev.IsRoot() {
			continue
		}
		if _, ok := eng.GetRevision(rev.Parent); !ok {
			report.DanglingParents[rev.Key] = rev.Parent
		}
	}

	// Every cycle is reported once, whichever of its members is walked first
	seen := make(map[string]bool)
	for _, rev := range revisions {
		_, err := eng.Sequence("", rev.Key)
		var cycleErr *squillerrors.CycleError
		if !errors.As(err, &cycleErr) {
			continue
		}

		members := slices.Clone(cycleErr.Revisions)
		slices.Sort(members)
		id := strings.Join(members, "\x00")
		if seen[id] {
			continue
		}
		seen[id] = true
		report.Cycles = append(report.Cycles, cycleErr.Revisions)
	}

	return report
}

// DoctorAction runs diagnostic checks on the project and its revision repository
func DoctorAction(ctx *runtime.Context, _ DoctorOptions) error {
	splog := ctx.Splog
	eng := ctx.Engine

	splog.Info("Running squill doctor...")
	splog.Newline()

	var warnings []string
	var errs []string

	splog.Info("Project:")
	warnings = checkProject(ctx, splog, warnings)

	splog.Newline()

	splog.Info("Revisions:")
	report := Doctor(eng)
	errs = checkRevisions(report, splog, errs)

	splog.Newline()
	switch {
	case len(errs) > 0:
		splog.Warn("Doctor found %d error(s) and %d warning(s).", len(errs), len(warnings))
		for _, err := range errs {
			splog.Error("  %s", err)
		}
		for _, warn := range warnings {
			splog.Warn("  %s", warn)
		}
		return fmt.Errorf("doctor found %d error(s)", len(errs))
	case len(warnings) > 0:
		splog.Info("Doctor found %d warning(s). Your revisions are healthy.", len(warnings))
		for _, warn := range warnings {
			splog.Warn("  %s", warn)
		}
	default:
		splog.Info("✅ All checks passed. Your revisions are healthy.")
	}

	return nil
}

// checkProject performs configuration checks
func checkProject(ctx *runtime.Context, splog *tui.Splog, warnings []string) []string {
	if ctx.ProjectRoot != "" {
		if config.IsInitialized(ctx.ProjectRoot) {
			splog.Info("  ✅ %s found in %s", config.ConfigFilename, ctx.ProjectRoot)
		} else {
			warnings = append(warnings, fmt.Sprintf("%s not found (run 'squill init')", config.ConfigFilename))
			splog.Warn("  %s not found", config.ConfigFilename)
		}
	}

	root := ctx.Engine.Root()
	if _, err := os.Stat(root); err != nil {
		warnings = append(warnings, fmt.Sprintf("repository directory %s does not exist yet", root))
		splog.Warn("  Repository directory %s does not exist yet", root)
	} else {
		splog.Info("  ✅ Repository %s (%d revisions)", tui.ColorDim(root), len(ctx.Engine.AllRevisions()))
	}

	return warnings
}

// checkRevisions turns a report into error lines
func checkRevisions(report DoctorReport, splog *tui.Splog, errs []string) []string {
	if len(report.Cycles) > 0 {
		for _, cycle := range report.Cycles {
			errs = append(errs, fmt.Sprintf("cycle detected in revision graph: %s", strings.Join(cycle, " -> ")))
		}
		splog.Error("  Found %d cycle(s) in revision graph", len(report.Cycles))
	} else {
		splog.Info("  ✅ No cycles detected in revision graph")
	}

	if len(report.DanglingParents) > 0 {
		keys := make([]string, 0, len(report.DanglingParents))
		for key := range report.DanglingParents {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			errs = append(errs, fmt.Sprintf("revision '%s' has parent '%s' that does not exist", key, report.DanglingParents[key]))
		}
		splog.Error("  Found %d revision(s) with missing parents", len(keys))
	} else {
		splog.Info("  ✅ All parent revisions exist")
	}

	if report.MultipleHeads {
		errs = append(errs, fmt.Sprintf("multiple heads: %s (rebase one onto another)", strings.Join(report.Heads, ", ")))
		splog.Error("  Found %d heads", len(report.Heads))
	} else if len(report.Heads) == 1 {
		splog.Info("  ✅ Single head %s", tui.ColorRevisionKey(report.Heads[0], true))
	} else {
		splog.Info("  ✅ No heads")
	}

	return errs
}
