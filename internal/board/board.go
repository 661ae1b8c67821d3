// Package board implements the Mutation API over the entity store.
//
// Every mutating call follows the same protocol: validate, ask for
// confirmation when the action is destructive, snapshot the current state
// into history, then replace the store's state in one SetState. A call that
// is rejected or declined takes no snapshot and changes nothing.
package board

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/classboard/internal/analysis"
	"github.com/mmynk/classboard/internal/constraints"
	"github.com/mmynk/classboard/internal/history"
	"github.com/mmynk/classboard/internal/models"
)

// Recorder observes board activity, typically for metrics.
type Recorder interface {
	Mutation(op string)
	Rejected(op, reason string)
	History(direction string)
}

type nopRecorder struct{}

func (nopRecorder) Mutation(string)         {}
func (nopRecorder) Rejected(string, string) {}
func (nopRecorder) History(string)          {}

// Options configures a Board. Zero values get sensible defaults.
type Options struct {
	Limits       Limits
	HistoryLimit int
	Locale       string

	Confirmer Confirmer
	Notifier  Notifier
	Recorder  Recorder

	// Analysis runs remote analysis requests. Nil disables RequestAnalysis.
	Analysis *analysis.Runner

	// Rand picks label colors. NewID mints ids for people, labels and rules.
	Rand  *rand.Rand
	NewID func() string
}

// Board is the Mutation API. It is not safe for concurrent use; callers that
// share a Board across goroutines must serialize access.
type Board struct {
	store   *Store
	history *history.Engine[models.AppState]
	limits  Limits
	locale  string

	confirm  Confirmer
	notify   Notifier
	rec      Recorder
	analysis *analysis.Runner
	rng      *rand.Rand
	newID    func() string
}

// New creates a board holding initial, repaired by Normalize.
func New(initial models.AppState, opts Options) *Board {
	if opts.Limits.Capacities == nil {
		opts.Limits = DefaultLimits()
	}
	if opts.Confirmer == nil {
		opts.Confirmer = ContextConfirmer{}
	}
	if opts.Notifier == nil {
		opts.Notifier = nopNotifier{}
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}

	store := NewStore(Normalize(initial, opts.Limits))
	return &Board{
		store:    store,
		history:  history.New[models.AppState](store, opts.HistoryLimit),
		limits:   opts.Limits,
		locale:   opts.Locale,
		confirm:  opts.Confirmer,
		notify:   opts.Notifier,
		rec:      opts.Recorder,
		analysis: opts.Analysis,
		rng:      opts.Rand,
		newID:    opts.NewID,
	}
}

// State returns a copy of the current state.
func (b *Board) State() models.AppState {
	return b.store.State()
}

// Limits returns the bounds this board enforces.
func (b *Board) Limits() Limits {
	return b.limits
}

// Locale is the collation locale used for name ordering.
func (b *Board) Locale() string {
	return b.locale
}

// Capacity returns the per-group ceiling for the current capacity class.
func (b *Board) Capacity() int {
	c, _ := b.limits.Capacities.Capacity(b.store.state.CapacityClass)
	return c
}

// Evaluate recomputes constraint violations for the current state.
func (b *Board) Evaluate() constraints.Report {
	s := b.store.state
	return constraints.Evaluate(s.People, s.Rules, s.Settings, b.Capacity())
}

// CanUndo reports whether Undo would change anything.
func (b *Board) CanUndo() bool { return b.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (b *Board) CanRedo() bool { return b.history.CanRedo() }

// Undo reverts the most recent mutation.
func (b *Board) Undo() bool {
	if !b.history.Undo() {
		return false
	}
	b.rec.History("undo")
	slog.Info("Undo applied")
	return true
}

// Redo re-applies the most recently undone mutation.
func (b *Board) Redo() bool {
	if !b.history.Redo() {
		return false
	}
	b.rec.History("redo")
	slog.Info("Redo applied")
	return true
}

// commit snapshots the pre-state and writes next.
func (b *Board) commit(op string, next models.AppState) {
	b.history.Snapshot()
	b.store.SetState(next)
	b.rec.Mutation(op)
}

// reject reports a validation failure to the user and returns err unchanged.
func (b *Board) reject(op string, err error) error {
	slog.Warn(op+" rejected", "error", err)
	b.rec.Rejected(op, reason(err))
	b.notify.Notify(Notice{Level: NoticeError, Op: op, Message: err.Error()})
	return err
}

// ask runs a confirmation. A declined prompt is recorded but not shown as an error.
func (b *Board) ask(ctx context.Context, op, message string) error {
	if b.confirm.Confirm(ctx, Prompt{Op: op, Message: message}) {
		return nil
	}
	slog.Debug(op+" declined")
	b.rec.Rejected(op, reason(ErrCancelled))
	return ErrCancelled
}

// knownLabels filters ids down to existing labels, without duplicates.
func (b *Board) knownLabels(state models.AppState, ids []string) []string {
	known := make(map[string]bool, len(state.Labels))
	for _, l := range state.Labels {
		known[l.ID] = true
	}
	return keepKnown(ids, known)
}

func normalizeGender(g models.Gender) models.Gender {
	if !g.Valid() {
		return models.GenderUnset
	}
	return g
}

// AddPerson appends a new, unassigned person. Blank names are rejected.
func (b *Board) AddPerson(ctx context.Context, name string, gender models.Gender, labelIDs []string) (models.Person, error) {
	const op = "AddPerson"
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Person{}, b.reject(op, ErrBlankName)
	}

	next := b.store.State()
	p := models.Person{
		ID:       b.newID(),
		Name:     name,
		Gender:   normalizeGender(gender),
		LabelIDs: b.knownLabels(next, labelIDs),
		Group:    models.Unassigned,
	}
	next.People = append(next.People, p)

	b.commit(op, next)
	slog.Info("Person added", "person_id", p.ID)
	return p, nil
}

// EditPerson overwrites a person's name, gender and labels.
func (b *Board) EditPerson(ctx context.Context, id, name string, gender models.Gender, labelIDs []string) error {
	const op = "EditPerson"
	name = strings.TrimSpace(name)
	if name == "" {
		return b.reject(op, ErrBlankName)
	}

	next := b.store.State()
	idx := indexOfPerson(next.People, id)
	if idx < 0 {
		return b.reject(op, ErrPersonNotFound)
	}

	p := &next.People[idx]
	p.Name = name
	p.Gender = normalizeGender(gender)
	p.LabelIDs = b.knownLabels(next, labelIDs)

	b.commit(op, next)
	slog.Info("Person edited", "person_id", id)
	return nil
}

// DeletePerson removes a person after confirmation, stripping them from every
// rule. Rules left with fewer than two members are deleted too.
func (b *Board) DeletePerson(ctx context.Context, id string) error {
	const op = "DeletePerson"
	next := b.store.State()
	idx := indexOfPerson(next.People, id)
	if idx < 0 {
		return b.reject(op, ErrPersonNotFound)
	}
	if err := b.ask(ctx, op, "Delete "+next.People[idx].Name+"?"); err != nil {
		return err
	}

	next.People = append(next.People[:idx], next.People[idx+1:]...)

	rules := make([]models.Rule, 0, len(next.Rules))
	dropped := 0
	for _, r := range next.Rules {
		members := make([]string, 0, len(r.MemberIDs))
		for _, m := range r.MemberIDs {
			if m != id {
				members = append(members, m)
			}
		}
		if len(members) < 2 {
			dropped++
			continue
		}
		r.MemberIDs = members
		rules = append(rules, r)
	}
	next.Rules = rules

	b.commit(op, next)
	slog.Info("Person deleted", "person_id", id, "rules_dropped", dropped)
	return nil
}

// MovePerson places a person in group, or in the holding area for
// models.Unassigned. Capacity and rule violations do not block the move;
// they only show up in Evaluate. Moving to the current group is a no-op.
func (b *Board) MovePerson(ctx context.Context, id string, group models.GroupID) error {
	const op = "MovePerson"
	next := b.store.State()
	idx := indexOfPerson(next.People, id)
	if idx < 0 {
		return b.reject(op, ErrPersonNotFound)
	}
	if group < 0 || int(group) > next.GroupCount {
		return b.reject(op, ErrInvalidGroup)
	}
	if next.People[idx].Group == group {
		return nil
	}

	from := next.People[idx].Group
	next.People[idx].Group = group

	b.commit(op, next)
	slog.Info("Person moved", "person_id", id, "from", from.String(), "to", group.String())
	return nil
}

// AddLabel creates a label with a color not used by any current label when
// one is left; otherwise any palette color, with a warning notice.
func (b *Board) AddLabel(ctx context.Context, name string) (models.Label, error) {
	const op = "AddLabel"
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Label{}, b.reject(op, ErrBlankName)
	}

	next := b.store.State()
	used := make(map[string]bool, len(next.Labels))
	for _, l := range next.Labels {
		if l.Label == name {
			return models.Label{}, b.reject(op, ErrDuplicateLabel)
		}
		used[l.Bg] = true
	}

	var available []models.Color
	for _, c := range models.Palette {
		if !used[c.Bg] {
			available = append(available, c)
		}
	}

	var color models.Color
	if len(available) > 0 {
		color = available[b.rng.IntN(len(available))]
	} else {
		color = models.Palette[b.rng.IntN(len(models.Palette))]
		b.notify.Notify(Notice{
			Level:   NoticeWarning,
			Op:      op,
			Message: "all label colors are in use; the new label may share a color",
		})
	}

	label := models.Label{ID: b.newID(), Label: name, Color: color}
	next.Labels = append(next.Labels, label)

	b.commit(op, next)
	slog.Info("Label added", "label_id", label.ID, "color", color.Bg)
	return label, nil
}

// DeleteLabel removes a label after confirmation and strips it from everyone.
func (b *Board) DeleteLabel(ctx context.Context, id string) error {
	const op = "DeleteLabel"
	next := b.store.State()
	idx := -1
	for i, l := range next.Labels {
		if l.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return b.reject(op, ErrLabelNotFound)
	}
	if err := b.ask(ctx, op, "Delete label "+next.Labels[idx].Label+"? It will be removed from everyone."); err != nil {
		return err
	}

	next.Labels = append(next.Labels[:idx], next.Labels[idx+1:]...)
	for i := range next.People {
		p := &next.People[i]
		kept := make([]string, 0, len(p.LabelIDs))
		for _, l := range p.LabelIDs {
			if l != id {
				kept = append(kept, l)
			}
		}
		p.LabelIDs = kept
	}

	b.commit(op, next)
	slog.Info("Label deleted", "label_id", id)
	return nil
}

// CreateRule keeps the given people apart. At least two distinct existing
// people are required.
func (b *Board) CreateRule(ctx context.Context, memberIDs []string) (models.Rule, error) {
	const op = "CreateRule"
	next := b.store.State()

	known := make(map[string]bool, len(next.People))
	for _, p := range next.People {
		known[p.ID] = true
	}
	members := keepKnown(memberIDs, known)
	if len(members) < 2 {
		return models.Rule{}, b.reject(op, ErrTooFewMembers)
	}

	rule := models.Rule{ID: b.newID(), MemberIDs: members}
	next.Rules = append(next.Rules, rule)

	b.commit(op, next)
	slog.Info("Rule created", "rule_id", rule.ID, "members_count", len(members))
	return rule, nil
}

// DeleteRule removes a rule.
func (b *Board) DeleteRule(ctx context.Context, id string) error {
	const op = "DeleteRule"
	next := b.store.State()
	for i, r := range next.Rules {
		if r.ID == id {
			next.Rules = append(next.Rules[:i], next.Rules[i+1:]...)
			b.commit(op, next)
			slog.Info("Rule deleted", "rule_id", id)
			return nil
		}
	}
	return b.reject(op, ErrRuleNotFound)
}

// ReplaceAll overwrites the entire state, e.g. from an imported project file.
// It is destructive and always asks for confirmation first.
func (b *Board) ReplaceAll(ctx context.Context, state models.AppState) error {
	const op = "ReplaceAll"
	if err := b.ask(ctx, op, "The current board will be overwritten. Continue?"); err != nil {
		return err
	}

	next := Normalize(state, b.limits)
	b.commit(op, next)
	slog.Info("Board replaced", "people_count", len(next.People), "labels_count", len(next.Labels))
	return nil
}

// ResetAll clears people and rules and restores the default labels.
// Settings are kept.
func (b *Board) ResetAll(ctx context.Context) error {
	const op = "ResetAll"
	if err := b.ask(ctx, op, "Reset all data?"); err != nil {
		return err
	}

	next := b.store.State()
	next.People = []models.Person{}
	next.Rules = []models.Rule{}
	next.Labels = models.DefaultLabels()

	b.commit(op, next)
	slog.Info("Board reset")
	return nil
}

// LoadSample replaces the board with demo data. Confirmation is only asked
// when there are people who would be lost.
func (b *Board) LoadSample(ctx context.Context) error {
	const op = "LoadSample"
	if len(b.store.state.People) > 0 {
		if err := b.ask(ctx, op, "All current data will be replaced by sample data. Continue?"); err != nil {
			return err
		}
	}

	b.commit(op, SampleState(b.limits, b.newID))
	b.notify.Notify(Notice{Level: NoticeInfo, Op: op, Message: "sample data loaded; drag people into groups to try it out"})
	slog.Info("Sample data loaded", "people_count", len(samplePeople))
	return nil
}

// SetCapacityClass switches the per-group capacity tier.
func (b *Board) SetCapacityClass(ctx context.Context, class models.CapacityClass) error {
	const op = "SetCapacityClass"
	if _, ok := b.limits.Capacities.Capacity(class); !ok {
		return b.reject(op, ErrUnknownCapacityClass)
	}
	next := b.store.State()
	if next.CapacityClass == class {
		return nil
	}
	next.CapacityClass = class

	b.commit(op, next)
	slog.Info("Capacity class changed", "class", class)
	return nil
}

// SetGroupCount changes the number of groups in one step. The count is
// clamped to the configured range; people in groups that disappear return
// to the holding area.
func (b *Board) SetGroupCount(ctx context.Context, n int) error {
	const op = "SetGroupCount"
	n = b.limits.ClampGroups(n)
	if n == b.store.state.GroupCount {
		return nil
	}
	b.commit(op, withGroupCount(b.store.State(), n))
	slog.Info("Group count changed", "group_count", n)
	return nil
}

// GroupCountAdjuster applies a continuous group-count change (a slider drag)
// under a single history entry.
type GroupCountAdjuster struct {
	b       *Board
	changed bool
}

// BeginGroupCountAdjust starts a gesture. The snapshot is taken by the first
// Set that changes the count, so a gesture that ends where it started leaves
// history untouched.
func (b *Board) BeginGroupCountAdjust() *GroupCountAdjuster {
	return &GroupCountAdjuster{b: b}
}

// Set applies an intermediate value and returns the clamped count in effect.
func (a *GroupCountAdjuster) Set(n int) int {
	n = a.b.limits.ClampGroups(n)
	if n == a.b.store.state.GroupCount {
		return n
	}
	if !a.changed {
		a.b.history.Snapshot()
		a.b.rec.Mutation("SetGroupCount")
		a.changed = true
	}
	a.b.store.SetState(withGroupCount(a.b.store.State(), n))
	return n
}

// Changed reports whether the gesture has recorded a history entry.
func (a *GroupCountAdjuster) Changed() bool {
	return a.changed
}

func withGroupCount(state models.AppState, n int) models.AppState {
	state.GroupCount = n
	for i := range state.People {
		if int(state.People[i].Group) > n {
			state.People[i].Group = models.Unassigned
		}
	}
	return state
}

// RequestAnalysis sends a de-identified copy of the board to the analysis
// runner. It reports false when analysis is disabled or already in flight.
// It never touches the board state.
func (b *Board) RequestAnalysis(ctx context.Context) bool {
	if b.analysis == nil {
		return false
	}
	in := analysis.BuildInput(b.store.State(), b.Capacity())
	return b.analysis.Request(ctx, in)
}

// Analysis returns the runner's status, or a zero status when analysis is disabled.
func (b *Board) Analysis() analysis.Status {
	if b.analysis == nil {
		return analysis.Status{}
	}
	return b.analysis.Status()
}

func indexOfPerson(people []models.Person, id string) int {
	for i, p := range people {
		if p.ID == id {
			return i
		}
	}
	return -1
}
