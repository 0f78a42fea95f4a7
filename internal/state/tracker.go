// Package state owns the set of tracked actors. A Tracker is the single
// place ActiveDesigns live: actors are added with Track, removed with
// Untrack, and reconciled against the host with Sync. Designs bound to an
// actor are applied on Track and after drift while auto designs are on.
package state

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
)

// TrackerConfig holds the dependencies for a Tracker
type TrackerConfig struct {
	Host     Host
	Settings Settings
	// Redrawer is optional. Without it redraw requests are only logged.
	Redrawer Redrawer
	// Guard is the restricted gear table, consulted only while
	// Settings.RestrictedGearProtection is on
	Guard design.GearGuard
	// BoundDesigns is optional. Without it auto designs do nothing.
	BoundDesigns BoundDesigns
}

// Validate ensures all required dependencies are present
func (c *TrackerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Host == nil {
		vb.RequiredField("Host")
	}
	if c.Settings == nil {
		vb.RequiredField("Settings")
	}

	return vb.Build()
}

// Tracker maps actor identifiers to their ActiveDesign. It is not safe
// for concurrent use; callers serialize access.
type Tracker struct {
	host     Host
	settings Settings
	redrawer Redrawer
	guard    design.GearGuard
	bound    BoundDesigns

	designs map[appearance.ActorIdentifier]*design.ActiveDesign
	// unseeded actors were tracked without a snapshot
	unseeded map[appearance.ActorIdentifier]struct{}
}

// NewTracker creates a tracker with no actors
func NewTracker(cfg *TrackerConfig) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tracker config")
	}

	return &Tracker{
		host:     cfg.Host,
		settings: cfg.Settings,
		redrawer: cfg.Redrawer,
		guard:    &settingsGuard{settings: cfg.Settings, guard: cfg.Guard},
		bound:    cfg.BoundDesigns,
		designs:  make(map[appearance.ActorIdentifier]*design.ActiveDesign),
		unseeded: make(map[appearance.ActorIdentifier]struct{}),
	}, nil
}

// Track starts tracking an actor and returns its design. Tracking an actor
// twice returns the existing design. If the host cannot show the actor yet,
// or the engine is disabled, the design starts from zero values and is
// seeded by the next enabled Sync.
func (t *Tracker) Track(ctx context.Context, id appearance.ActorIdentifier) (*design.ActiveDesign, error) {
	if existing, ok := t.designs[id]; ok {
		return existing, nil
	}

	cfg := &design.ActiveDesignConfig{
		Identifier: id,
		Guard:      t.guard,
	}
	enabled := t.settings.Enabled()
	if enabled {
		if snapshot, ok := t.host.ReadActorSnapshot(id); ok {
			cfg.Snapshot = &snapshot
			cfg.Visor = t.host.ReadVisorState(id)
		}
	}

	active, err := design.NewActiveDesign(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to track %s", id)
	}

	t.designs[id] = active
	if cfg.Snapshot == nil {
		t.unseeded[id] = struct{}{}
	}
	slog.InfoContext(ctx, "actor tracked",
		"actor", id.String(),
		"enabled", enabled,
		"has_snapshot", cfg.Snapshot != nil)

	if enabled && t.applyBoundDesign(ctx, active) {
		t.maybeRedraw(ctx, active)
	}

	return active, nil
}

// Untrack stops tracking an actor. It reports whether the actor was tracked.
func (t *Tracker) Untrack(ctx context.Context, id appearance.ActorIdentifier) bool {
	if _, ok := t.designs[id]; !ok {
		return false
	}
	delete(t.designs, id)
	delete(t.unseeded, id)
	slog.InfoContext(ctx, "actor untracked", "actor", id.String())
	return true
}

// Get returns the design of a tracked actor
func (t *Tracker) Get(id appearance.ActorIdentifier) (*design.ActiveDesign, bool) {
	d, ok := t.designs[id]
	return d, ok
}

// IDs returns every tracked actor sorted by their text form
func (t *Tracker) IDs() []appearance.ActorIdentifier {
	ids := make([]appearance.ActorIdentifier, 0, len(t.designs))
	for id := range t.designs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

// Len returns the number of tracked actors
func (t *Tracker) Len() int {
	return len(t.designs)
}

// Sync reads the actor from the host and absorbs any drift, then applies
// the actor's bound design. While the engine is disabled it does nothing.
// An unavailable actor leaves the design untouched and returns an
// unavailable error; the caller retries on a later tick.
func (t *Tracker) Sync(ctx context.Context, id appearance.ActorIdentifier) (design.DriftReport, error) {
	if !t.settings.Enabled() {
		return design.DriftReport{}, nil
	}

	active, ok := t.designs[id]
	if !ok {
		return design.DriftReport{}, errors.NotFoundf("actor %s is not tracked", id)
	}

	snapshot, ok := t.host.ReadActorSnapshot(id)
	if !ok {
		return design.DriftReport{}, errors.ActorUnavailable(id.String())
	}

	var report design.DriftReport
	if _, pending := t.unseeded[id]; pending {
		report = active.Seed(snapshot, t.host.ReadVisorState(id))
		delete(t.unseeded, id)
	} else {
		report = active.Initialize(snapshot, t.host.ReadVisorState(id))
	}
	if report.HasDrift() {
		slog.InfoContext(ctx, "actor drift absorbed",
			"actor", id.String(),
			"customize", report.Absorbed.Customize.String(),
			"equip", report.Absorbed.Equip.String(),
			"locked_customize", report.Locked.Customize.String(),
			"locked_equip", report.Locked.Equip.String(),
			"visor_changed", report.VisorChanged)
		t.applyBoundDesign(ctx, active)
		t.maybeRedraw(ctx, active)
	}

	return report, nil
}

// Apply merges source onto a tracked actor using the current settings.
// While the engine is disabled it does nothing.
func (t *Tracker) Apply(ctx context.Context, id appearance.ActorIdentifier, source design.Design) (design.ApplyResult, error) {
	if !t.settings.Enabled() {
		return design.ApplyResult{}, nil
	}
	if source == nil {
		return design.ApplyResult{}, errors.InvalidArgument("source design is required")
	}

	active, ok := t.designs[id]
	if !ok {
		return design.ApplyResult{}, errors.NotFoundf("actor %s is not tracked", id)
	}

	result, err := design.Apply(active, source, design.ApplyOptions{
		SkipInvalidCustomizations: t.settings.SkipInvalidCustomizations(),
	})
	if err != nil {
		return result, errors.Wrapf(err, "failed to apply design to %s", id)
	}

	slog.InfoContext(ctx, "design applied",
		"actor", id.String(),
		"changed_customize", result.Changed.Customize.String(),
		"changed_equip", result.Changed.Equip.String(),
		"locked_equip", result.Locked.Equip.String(),
		"rejected", result.Rejected.String(),
		"skipped_customize", result.SkippedCustomize)

	if !result.Changed.IsEmpty() {
		t.maybeRedraw(ctx, active)
	}

	return result, nil
}

// RequestRedrawIfNeeded asks for a redraw when the intended state of a
// tracked actor cannot be reached in place. It reports whether one was requested.
func (t *Tracker) RequestRedrawIfNeeded(ctx context.Context, id appearance.ActorIdentifier) bool {
	active, ok := t.designs[id]
	if !ok {
		return false
	}
	return t.maybeRedraw(ctx, active)
}

// applyBoundDesign merges the actor's bound design while auto designs are
// on. It reports whether anything changed. Failures are logged only; the
// actor keeps its current state.
func (t *Tracker) applyBoundDesign(ctx context.Context, active *design.ActiveDesign) bool {
	if t.bound == nil || !t.settings.AutoDesigns() {
		return false
	}

	id := active.Identifier()
	source, ok, err := t.bound.BoundDesign(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve bound design",
			"actor", id.String(),
			"error", err)
		return false
	}
	if !ok {
		return false
	}

	result, err := design.Apply(active, source, design.ApplyOptions{
		SkipInvalidCustomizations: t.settings.SkipInvalidCustomizations(),
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to apply bound design",
			"actor", id.String(),
			"error", err)
		return false
	}

	slog.InfoContext(ctx, "bound design applied",
		"actor", id.String(),
		"changed_customize", result.Changed.Customize.String(),
		"changed_equip", result.Changed.Equip.String(),
		"locked_equip", result.Locked.Equip.String(),
		"rejected", result.Rejected.String(),
		"skipped_customize", result.SkippedCustomize)

	return !result.Changed.IsEmpty()
}

func (t *Tracker) maybeRedraw(ctx context.Context, active *design.ActiveDesign) bool {
	redraw, reason := active.NeedsRedraw()
	if !redraw {
		redraw, reason = active.NeedsEquipRedraw()
		redraw = redraw && t.settings.AutoRedrawEquip()
	}
	if !redraw {
		return false
	}
	if t.redrawer == nil {
		slog.InfoContext(ctx, "redraw needed but no redrawer configured",
			"actor", active.GetID(),
			"reason", reason)
		return true
	}
	if err := t.redrawer.RequestRedraw(ctx, active, reason); err != nil {
		slog.WarnContext(ctx, "failed to request redraw",
			"actor", active.GetID(),
			"reason", reason,
			"error", err)
	}
	return true
}

// settingsGuard applies the restricted gear table only while protection is on
type settingsGuard struct {
	settings Settings
	guard    design.GearGuard
}

func (g *settingsGuard) Allowed(slot appearance.EquipSlot, armor appearance.Armor, race appearance.Race, gender appearance.Gender) bool {
	if g.guard == nil || !g.settings.RestrictedGearProtection() {
		return true
	}
	return g.guard.Allowed(slot, armor, race, gender)
}
