// Package wizard implements the content-creation flow shared by the
// blog, newsletter, and social-ad surfaces: brand input, type
// selection, simulated generation, review/edit with a chat refinement
// loop, preview, and the publish-or-schedule branch.
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foundrly/foundrly/backend"
	"github.com/foundrly/foundrly/content"
	"github.com/foundrly/foundrly/webhook"
)

// AdPublisher delivers a published ad to the workflow webhook.
type AdPublisher interface {
	PublishAd(ctx context.Context, post webhook.AdPost) error
}

// Saver persists a finished content item. Failures are best effort.
type Saver interface {
	SaveContentItem(ctx context.Context, item backend.ContentItem) error
}

// Pinger records a best-effort analytics event.
type Pinger interface {
	Ping(ctx context.Context, ev webhook.Event)
}

// Wizard owns one content-creation session. All state is in-memory and
// dropped on Close; nothing is shared between wizard instances. Every
// simulated delay runs under the wizard's context so teardown cancels
// pending timers before they can touch state.
type Wizard struct {
	id        string
	surface   content.Surface
	timings   Timings
	logger    *zap.Logger
	publisher AdPublisher
	saver     Saver
	pinger    Pinger
	nowFn     func() time.Time
	userID    string
	brandID   string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	events chan Event

	mu         sync.Mutex
	closed     bool
	publishing bool
	linking    bool
	editorGen  int
	phase      Phase
	brand      content.BrandInput
	typeID     string
	content    content.Content
	undo       content.Content
	chat       []ChatMessage
	slots      []RecommendedSlot
	schedule   *ScheduleSelection
	conn       ConnectionState
}

// Option configures a Wizard at construction time.
type Option func(*Wizard)

func WithTimings(t Timings) Option          { return func(w *Wizard) { w.timings = t } }
func WithLogger(l *zap.Logger) Option       { return func(w *Wizard) { w.logger = l } }
func WithPublisher(p AdPublisher) Option    { return func(w *Wizard) { w.publisher = p } }
func WithSaver(s Saver) Option              { return func(w *Wizard) { w.saver = s } }
func WithPinger(p Pinger) Option            { return func(w *Wizard) { w.pinger = p } }
func WithNow(fn func() time.Time) Option    { return func(w *Wizard) { w.nowFn = fn } }
func WithIdentity(userID, brandID string) Option {
	return func(w *Wizard) { w.userID, w.brandID = userID, brandID }
}

// New creates a wizard for one surface. Recommended slots are computed
// once here from the current time.
func New(surface content.Surface, opts ...Option) (*Wizard, error) {
	if !surface.Valid() {
		return nil, fmt.Errorf("unknown surface %q", surface)
	}
	w := &Wizard{
		id:      uuid.NewString(),
		surface: surface,
		timings: DefaultTimings(),
		logger:  zap.NewNop(),
		nowFn:   time.Now,
		phase:   PhaseInput,
		events:  make(chan Event, 16),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.slots = RecommendSlots(w.nowFn(), surface)
	w.ctx, w.cancel = context.WithCancel(context.Background())
	return w, nil
}

func (w *Wizard) ID() string               { return w.id }
func (w *Wizard) Surface() content.Surface { return w.surface }

// Events streams phase transitions. The channel is buffered; slow
// consumers drop events rather than block the wizard. Closed on Close.
func (w *Wizard) Events() <-chan Event { return w.events }

func (w *Wizard) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

func (w *Wizard) Brand() content.BrandInput {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.brand
}

// Content returns a copy of the live generated content, or nil before
// generation completes.
func (w *Wizard) Content() content.Content {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.content == nil {
		return nil
	}
	return w.content.Clone()
}

func (w *Wizard) Chat() []ChatMessage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]ChatMessage(nil), w.chat...)
}

func (w *Wizard) Slots() []RecommendedSlot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]RecommendedSlot(nil), w.slots...)
}

func (w *Wizard) Connected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.Connected
}

// setPhaseLocked transitions the phase and emits an event. Callers hold mu.
func (w *Wizard) setPhaseLocked(p Phase) {
	w.phase = p
	if w.closed {
		return
	}
	select {
	case w.events <- Event{Phase: p, Step: p.Step()}:
	default:
	}
}

// sleep blocks for d or until the wizard is torn down. It reports
// whether the full delay elapsed.
func (w *Wizard) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-w.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// after runs fn once d has elapsed, unless the wizard is torn down
// first. fn must take mu and re-check phase before mutating anything.
func (w *Wizard) after(d time.Duration, fn func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if w.sleep(d) {
			fn()
		}
	}()
}

// AdvanceFromInput stores the brand input and moves to type selection.
// A missing name or website makes this a silent no-op: the submit
// control stays disabled and no error is surfaced.
func (w *Wizard) AdvanceFromInput(brand content.BrandInput) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseInput {
		return
	}
	if strings.TrimSpace(brand.Name) == "" || strings.TrimSpace(brand.Website) == "" {
		return
	}
	w.brand = brand
	w.setPhaseLocked(PhaseTypeSelect)
}

// SelectType kicks off simulated generation for the chosen catalog
// entry. Unknown ids resolve to the surface's default type up front,
// so the stored id, the snapshot, and the persisted record all agree
// and the wizard always ends up with populated content.
func (w *Wizard) SelectType(typeID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseTypeSelect {
		return
	}
	w.typeID = content.LookupType(w.surface, typeID).ID
	w.setPhaseLocked(PhaseGenerating)
	w.after(w.timings.Generate, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed || w.phase != PhaseGenerating {
			return
		}
		w.content = content.Generate(w.surface, w.typeID, w.brand)
		w.setPhaseLocked(PhaseReviewing)
	})
}

// OpenEditor enters the editing overlay, snapshotting the content for
// single-level undo and starting a fresh chat.
func (w *Wizard) OpenEditor() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseReviewing || w.content == nil {
		return
	}
	w.editorGen++
	w.undo = w.content.Clone()
	w.chat = nil
	w.setPhaseLocked(PhaseEditing)
}

// CloseEditor returns to review, keeping any edits.
func (w *Wizard) CloseEditor() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseEditing {
		return
	}
	w.editorGen++
	w.setPhaseLocked(PhaseReviewing)
}

// UpdateField replaces one field of the live content. Unknown paths
// return an error and leave the content untouched.
func (w *Wizard) UpdateField(path, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseEditing || w.content == nil {
		return nil
	}
	return content.UpdateField(w.content, path, value)
}

// Undo restores the content captured when the editor was opened. One
// level only; repeated undos restore the same snapshot.
func (w *Wizard) Undo() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseEditing || w.undo == nil {
		return
	}
	w.content = w.undo.Clone()
}

// SendRefinement appends the user's instruction to the chat and, after
// the simulated assistant delay, the reply plus any keyword-matched
// content change. Blank instructions are ignored.
func (w *Wizard) SendRefinement(instruction string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseEditing {
		return
	}
	if strings.TrimSpace(instruction) == "" {
		return
	}
	w.chat = append(w.chat, ChatMessage{Role: RoleUser, Text: instruction})
	// The reply is scoped to this editor session: reopening the editor
	// bumps the generation and orphans any still-pending reply.
	gen := w.editorGen
	w.after(w.timings.Refine, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed || w.phase != PhaseEditing || w.editorGen != gen {
			return
		}
		reply := applyRefinement(instruction, w.content)
		w.chat = append(w.chat, ChatMessage{Role: RoleAssistant, Text: reply})
	})
}

// OpenPreview moves from review to the platform-shaped preview.
func (w *Wizard) OpenPreview() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseReviewing || w.content == nil {
		return
	}
	w.setPhaseLocked(PhasePreviewing)
}

// ClosePreview returns to review.
func (w *Wizard) ClosePreview() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhasePreviewing {
		return
	}
	w.setPhaseLocked(PhaseReviewing)
}

// BeginPublish branches toward immediate publishing. The connecting
// phase is skipped entirely when the destination is already linked.
func (w *Wizard) BeginPublish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhasePreviewing {
		return
	}
	if w.conn.Connected {
		w.setPhaseLocked(PhaseConfirmingPublish)
	} else {
		w.setPhaseLocked(PhaseConnecting)
	}
}

// BeginSchedule branches toward scheduled publishing.
func (w *Wizard) BeginSchedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhasePreviewing {
		return
	}
	w.setPhaseLocked(PhaseScheduling)
}

// CancelPublish backs out of the publish branch to the preview. Once a
// destination is linked it stays linked for the session, so the next
// BeginPublish skips the connecting phase.
func (w *Wizard) CancelPublish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.publishing || w.linking {
		return
	}
	switch w.phase {
	case PhaseConnecting, PhaseScheduling, PhaseConfirmingPublish:
		w.setPhaseLocked(PhasePreviewing)
	}
}

// Connect simulates linking the publishing destination. Any non-empty
// credential hint succeeds after a fixed delay, then the wizard
// auto-advances to publish confirmation after a further pause.
func (w *Wizard) Connect(credentialHint string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseConnecting || w.linking {
		return
	}
	if strings.TrimSpace(credentialHint) == "" {
		return
	}
	w.linking = true
	w.after(w.timings.Connect, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if w.closed || w.phase != PhaseConnecting {
			w.linking = false
			return
		}
		w.conn = ConnectionState{Connected: true, CredentialHint: credentialHint}
		w.after(w.timings.ConnectAdvance, func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			w.linking = false
			if w.closed || w.phase != PhaseConnecting {
				return
			}
			w.setPhaseLocked(PhaseConfirmingPublish)
		})
	})
}

// Schedule stores the chosen slot and runs the publishing pacing to
// success. The date must be an ISO date and the time HH:MM.
func (w *Wizard) Schedule(date, timeOfDay string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseScheduling || w.publishing {
		return nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid schedule date %q", date)
	}
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return fmt.Errorf("invalid schedule time %q", timeOfDay)
	}
	w.schedule = &ScheduleSelection{Date: date, Time: timeOfDay}
	w.finishLocked(PhaseScheduling, true)
	return nil
}

// ConfirmPublish publishes immediately. On the ad surface the workflow
// webhook gets one attempt; failure is logged and deliberately ignored
// so the flow still reaches success. The visible publishing duration
// never drops below the configured floor.
func (w *Wizard) ConfirmPublish() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.phase != PhaseConfirmingPublish || w.publishing {
		return
	}
	w.finishLocked(PhaseConfirmingPublish, false)
}

// finishLocked runs the shared publish pacing: optional webhook call,
// padding up to the publish floor, transition to success, best-effort
// persistence, analytics ping, and the success auto-dismiss. Callers
// hold mu and have verified the phase is fromPhase.
func (w *Wizard) finishLocked(fromPhase Phase, scheduled bool) {
	w.publishing = true
	var post *webhook.AdPost
	if !scheduled && w.surface == content.SurfaceAd && w.publisher != nil {
		if ad, ok := w.content.(*content.AdContent); ok {
			post = &webhook.AdPost{
				UserID:  w.userID,
				BrandID: w.brandID,
				Caption: ad.Caption,
			}
			if ad.VideoURL != "" {
				post.MediaType = "video"
				post.MediaURLs = []string{ad.VideoURL}
			} else {
				post.MediaType = "image"
				post.MediaURLs = []string{ad.ImageURL}
			}
		}
	}
	item := w.contentItemLocked(scheduled)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		start := time.Now()
		if post != nil {
			if err := w.publisher.PublishAd(w.ctx, *post); err != nil {
				// Demo contract: the flow succeeds visibly even when
				// the webhook rejects.
				w.logger.Warn("ad publish webhook failed, continuing",
					zap.String("wizard_id", w.id), zap.Error(err))
			}
		}
		if remaining := w.timings.PublishFloor - time.Since(start); remaining > 0 {
			if !w.sleep(remaining) {
				return
			}
		}

		w.mu.Lock()
		w.publishing = false
		if w.closed || w.phase != fromPhase {
			w.mu.Unlock()
			return
		}
		w.setPhaseLocked(PhaseSuccess)
		w.after(w.timings.SuccessDismiss, func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			if w.closed || w.phase != PhaseSuccess {
				return
			}
			w.resetLocked()
		})
		w.mu.Unlock()

		if w.saver != nil && item != nil {
			if err := w.saver.SaveContentItem(w.ctx, *item); err != nil {
				w.logger.Warn("content item save failed",
					zap.String("wizard_id", w.id), zap.Error(err))
			}
		}
		if w.pinger != nil {
			name := "content_published"
			if scheduled {
				name = "content_scheduled"
			}
			w.pinger.Ping(w.ctx, webhook.Event{
				UserID:  w.userID,
				Name:    name,
				Surface: string(w.surface),
			})
		}
	}()
}

// contentItemLocked builds the record handed to the backend at finish.
func (w *Wizard) contentItemLocked(scheduled bool) *backend.ContentItem {
	if w.content == nil {
		return nil
	}
	body, err := json.Marshal(w.content)
	if err != nil {
		return nil
	}
	item := &backend.ContentItem{
		ID:        uuid.NewString(),
		UserID:    w.userID,
		BrandID:   w.brandID,
		Surface:   string(w.surface),
		TypeID:    w.typeID,
		Title:     contentTitle(w.content),
		Body:      body,
		Status:    "published",
		CreatedAt: w.nowFn(),
	}
	if scheduled && w.schedule != nil {
		item.Status = "scheduled"
		if at, err := time.ParseInLocation("2006-01-02 15:04", w.schedule.Date+" "+w.schedule.Time, time.Local); err == nil {
			item.ScheduledFor = &at
		}
	}
	return item
}

func contentTitle(c content.Content) string {
	switch v := c.(type) {
	case *content.BlogContent:
		return v.Title
	case *content.NewsletterContent:
		return v.Subject
	case *content.AdContent:
		caption := v.Caption
		if len(caption) > 60 {
			caption = caption[:60]
		}
		return caption
	}
	return ""
}

// resetLocked returns the wizard to its initial state. Recommended
// slots survive the reset; they are computed once per instance.
func (w *Wizard) resetLocked() {
	w.publishing = false
	w.linking = false
	w.brand = content.BrandInput{}
	w.typeID = ""
	w.content = nil
	w.undo = nil
	w.chat = nil
	w.schedule = nil
	w.conn = ConnectionState{}
	w.setPhaseLocked(PhaseInput)
}

// Close tears the session down: pending timers are cancelled before
// they can mutate state, transient state is dropped, and the event
// stream is closed. Close blocks until every timer goroutine exits.
func (w *Wizard) Close() {
	w.cancel()
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.resetLocked()
	close(w.events)
	w.mu.Unlock()
	w.wg.Wait()
}
