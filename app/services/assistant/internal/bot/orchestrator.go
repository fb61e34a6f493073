package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"AtelierAI/app/common/consts/biz"
	"AtelierAI/app/services/assistant/internal/bot/catalog"
	"AtelierAI/app/services/assistant/internal/bot/intent"
	"AtelierAI/app/services/assistant/internal/bot/ledger"
	"AtelierAI/app/services/assistant/internal/llm"
	"AtelierAI/app/services/assistant/internal/session"

	"github.com/zeromicro/go-zero/core/logx"
)

type Inbound struct {
	Text       string
	SenderID   string
	SenderName string
	Media      *Media
}

type Media struct {
	Kind    string
	URL     string
	Caption string
}

// Outcome carries the chosen reply plus the metadata the transport
// layer publishes downstream.
type Outcome struct {
	Reply        string
	Intent       string
	BillingEntry *ledger.Entry
}

// Responder is the language-model boundary. Both calls fail closed:
// Complete with an error the caller replaces, ClassifyEmployee with a
// parse-failure decision.
type Responder interface {
	Available() bool
	Complete(ctx context.Context, systemPrompt string, history []session.Turn, user string) (string, error)
	ClassifyEmployee(ctx context.Context, text string) llm.Decision
}

type Deps struct {
	Sessions    session.Store
	Model       Responder
	Resolver    *catalog.Resolver
	Recorder    *ledger.Recorder
	EmployeeIDs []string
	Threshold   float64
	HistoryKeep int
}

// Orchestrator routes one inbound message through classification,
// disambiguation and resolution, and owns all mutation of the session.
type Orchestrator struct {
	sessions    session.Store
	model       Responder
	resolver    *catalog.Resolver
	recorder    *ledger.Recorder
	billing     *intent.Classifier
	products    *intent.Classifier
	employees   map[string]bool
	historyKeep int
}

func New(deps Deps) *Orchestrator {
	keep := deps.HistoryKeep
	if keep <= 0 {
		keep = biz.DefaultHistoryKeep
	}
	employees := make(map[string]bool, len(deps.EmployeeIDs))
	for _, id := range deps.EmployeeIDs {
		employees[id] = true
	}
	return &Orchestrator{
		sessions:    deps.Sessions,
		model:       deps.Model,
		resolver:    deps.Resolver,
		recorder:    deps.Recorder,
		billing:     intent.NewClassifier(intent.Billing, deps.Threshold),
		products:    intent.NewClassifier(intent.Products, deps.Threshold),
		employees:   employees,
		historyKeep: keep,
	}
}

func (o *Orchestrator) Handle(ctx context.Context, in Inbound) Outcome {
	log := logx.WithContext(ctx)

	text := strings.TrimSpace(in.Text)
	if text == "" && in.Media != nil {
		text = strings.TrimSpace(in.Media.Caption)
	}
	if text == "" {
		return Outcome{Reply: GreetingReply}
	}

	sess, err := o.sessions.GetOrCreate(ctx, in.SenderID)
	if err != nil {
		log.Errorf("session load failed for %s, using transient session: %v", in.SenderID, err)
		sess = &session.Session{ID: in.SenderID}
	}

	var out Outcome
	if o.employees[in.SenderID] {
		out = o.handleEmployee(ctx, sess, in, text)
	} else {
		out = o.handleCustomer(ctx, sess, text)
	}

	if err := o.sessions.Put(ctx, sess); err != nil {
		log.Errorf("session persist failed for %s: %v", in.SenderID, err)
	}
	return out
}

// handleCustomer implements the customer flow: a pending clarification
// bypasses the model entirely; otherwise the model answers and a
// product mention overrides with the catalog resolution.
func (o *Orchestrator) handleCustomer(ctx context.Context, sess *session.Session, text string) Outcome {
	if sess.PendingQuery != "" {
		reply := o.resolvePending(sess, text)
		sess.Push(biz.RoleUser, text, o.historyKeep)
		sess.Push(biz.RoleAssistant, reply, o.historyKeep)
		return Outcome{Reply: reply, Intent: sess.LastIntent}
	}

	if intent.IsGreeting(text) {
		sess.LastIntent = intent.KeyGreeting
		sess.LastIntentAt = time.Now()
		sess.Push(biz.RoleUser, text, o.historyKeep)
		sess.Push(biz.RoleAssistant, GreetingReply, o.historyKeep)
		return Outcome{Reply: GreetingReply, Intent: intent.KeyGreeting}
	}

	recent := sess.Recent(intent.HistoryLookback)
	history := append([]session.Turn(nil), sess.History...)
	sess.Push(biz.RoleUser, text, o.historyKeep)

	reply, err := o.model.Complete(ctx, customerSystemPrompt, history, text)
	if err != nil {
		logx.WithContext(ctx).Errorf("completion failed, using fixed greeting: %v", err)
		reply = GreetingReply
	}

	res := o.products.Classify(text)
	if res.Category != intent.KeyUnknown {
		sess.LastIntent = res.Category
		sess.LastIntentAt = time.Now()
	}

	// deterministic catalog answer beats the generated one
	if intent.MentionsProduct(text) {
		if intent.NeedsClarification(text, recent) {
			sess.PendingQuery = text
			reply = ClarifyGenderReply
		} else {
			gender := ""
			if g, ok := intent.DetectGender(text); ok {
				gender = string(g)
			} else {
				for i := len(recent) - 1; i >= 0; i-- {
					if g, ok := intent.DetectGender(recent[i]); ok {
						gender = string(g)
						break
					}
				}
			}
			reply = o.renderResolved(text, gender)
		}
	}

	sess.Push(biz.RoleAssistant, reply, o.historyKeep)
	return Outcome{Reply: reply, Intent: res.Category}
}

// resolvePending consumes an awaited gender qualifier. A miss re-prompts
// and leaves the remembered query untouched.
func (o *Orchestrator) resolvePending(sess *session.Session, text string) string {
	g, ok := intent.DetectGender(text)
	if !ok {
		return ClarifyRetryReply
	}
	query := intent.Reformulate(sess.PendingQuery, g)
	sess.PendingQuery = ""
	return o.renderResolved(query, string(g))
}

func (o *Orchestrator) renderResolved(query, gender string) string {
	if !o.resolver.Loaded() {
		return ApologyReply
	}
	res := o.resolver.Resolve(query, gender)
	if len(res.Categories) == 0 {
		return NoMatchReply
	}

	var sb strings.Builder
	sb.WriteString("Here's what I found for you:\n")
	for i, cat := range res.Categories {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, cat.Name))
	}
	if len(res.Links) > 0 {
		sb.WriteString("Browse:\n")
		for _, link := range res.Links {
			sb.WriteString(link)
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

// handleEmployee files billing notes and greets everything else. A
// classifier parse failure shares the greeting path so staff always get
// an answer.
func (o *Orchestrator) handleEmployee(ctx context.Context, sess *session.Session, in Inbound, text string) Outcome {
	sess.Push(biz.RoleUser, text, o.historyKeep)

	decision := o.model.ClassifyEmployee(ctx, text)

	out := Outcome{}
	switch decision.Kind {
	case llm.KindBilling:
		res := o.billing.Classify(text)
		entry := o.recorder.Record(ctx, res.Category, text, in.SenderID, in.SenderName)
		out.Reply = fmt.Sprintf(BillingAckFormat, res.Category, entry.ID)
		out.Intent = res.Category
		out.BillingEntry = &entry
	default:
		out.Reply = EmployeeGreetingReply
		out.Intent = intent.KeyGreeting
	}

	sess.Push(biz.RoleAssistant, out.Reply, o.historyKeep)
	return out
}
