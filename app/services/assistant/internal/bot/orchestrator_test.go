package bot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"AtelierAI/app/services/assistant/internal/bot/catalog"
	"AtelierAI/app/services/assistant/internal/bot/intent"
	"AtelierAI/app/services/assistant/internal/bot/ledger"
	"AtelierAI/app/services/assistant/internal/llm"
	"AtelierAI/app/services/assistant/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponder struct {
	reply         string
	err           error
	decision      llm.Decision
	completeCalls int
	classifyCalls int
}

func (f *fakeResponder) Available() bool { return true }

func (f *fakeResponder) Complete(_ context.Context, _ string, _ []session.Turn, _ string) (string, error) {
	f.completeCalls++
	return f.reply, f.err
}

func (f *fakeResponder) ClassifyEmployee(context.Context, string) llm.Decision {
	f.classifyCalls++
	return f.decision
}

type fixture struct {
	orch     *Orchestrator
	model    *fakeResponder
	sessions *session.MemoryStore
	store    *ledger.MemoryStore
}

func newFixture(t *testing.T, employeeIDs ...string) *fixture {
	t.Helper()

	tables := &catalog.Tables{
		Categories: []catalog.Category{
			{ID: "c1", Name: "Shoes for Men"},
			{ID: "c2", Name: "Shoes for Women"},
			{ID: "c3", Name: "T-Shirts"},
		},
		Galleries: []catalog.Gallery{
			{CategoryID: "c1", DisplayKey: "mens shoes"},
			{CategoryID: "c2", DisplayKey: "womens shoes"},
			{CategoryID: "c3", DisplayKey: "tees"},
		},
	}

	model := &fakeResponder{reply: "Happy to help!"}
	sessions := session.NewMemoryStore()
	store := ledger.NewMemoryStore()

	orch := New(Deps{
		Sessions:    sessions,
		Model:       model,
		Resolver:    catalog.NewResolver(tables, catalog.DefaultWeights(), "https://example.test/g/"),
		Recorder:    ledger.NewRecorder(ledger.NewSequencer(store, intent.Billing), store),
		EmployeeIDs: employeeIDs,
		Threshold:   intent.DefaultThreshold,
		HistoryKeep: 10,
	})
	return &fixture{orch: orch, model: model, sessions: sessions, store: store}
}

func TestHandleGreetingSkipsModelAndLedger(t *testing.T) {
	f := newFixture(t)

	out := f.orch.Handle(context.Background(), Inbound{Text: "hi", SenderID: "923001"})

	assert.Equal(t, GreetingReply, out.Reply)
	assert.Equal(t, intent.KeyGreeting, out.Intent)
	assert.Zero(t, f.model.completeCalls)
	assert.Empty(t, f.store.Entries())

	rows, err := f.store.Rows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHandleEmptyMessage(t *testing.T) {
	f := newFixture(t)

	out := f.orch.Handle(context.Background(), Inbound{Text: "   ", SenderID: "923001"})
	assert.Equal(t, GreetingReply, out.Reply)
	assert.Zero(t, f.model.completeCalls)
}

func TestHandleMediaCaption(t *testing.T) {
	f := newFixture(t)

	out := f.orch.Handle(context.Background(), Inbound{
		SenderID: "923001",
		Media:    &Media{Kind: "image", Caption: "hello"},
	})
	assert.Equal(t, GreetingReply, out.Reply)
}

func TestHandleCustomerChatReply(t *testing.T) {
	f := newFixture(t)

	out := f.orch.Handle(context.Background(), Inbound{Text: "are you open on friday", SenderID: "923001"})

	assert.Equal(t, "Happy to help!", out.Reply)
	assert.Equal(t, 1, f.model.completeCalls)
}

func TestHandleCustomerModelFailure(t *testing.T) {
	f := newFixture(t)
	f.model.err = errors.New("upstream down")

	out := f.orch.Handle(context.Background(), Inbound{Text: "are you open on friday", SenderID: "923001"})
	assert.Equal(t, GreetingReply, out.Reply)
}

func TestHandleClarificationRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out := f.orch.Handle(ctx, Inbound{Text: "I want a t-shirt", SenderID: "923001"})
	assert.Equal(t, ClarifyGenderReply, out.Reply)

	sess, err := f.sessions.GetOrCreate(ctx, "923001")
	require.NoError(t, err)
	assert.Equal(t, "I want a t-shirt", sess.PendingQuery)

	// an answer without a gender word re-prompts and keeps the query
	out = f.orch.Handle(ctx, Inbound{Text: "the blue one", SenderID: "923001"})
	assert.Equal(t, ClarifyRetryReply, out.Reply)
	assert.Equal(t, "I want a t-shirt", sess.PendingQuery)

	out = f.orch.Handle(ctx, Inbound{Text: "for men", SenderID: "923001"})
	assert.Contains(t, out.Reply, "Here's what I found for you:")
	assert.Contains(t, out.Reply, "https://example.test/g/")
	assert.Empty(t, sess.PendingQuery)
}

func TestHandleCustomerGenderInText(t *testing.T) {
	f := newFixture(t)

	out := f.orch.Handle(context.Background(), Inbound{Text: "shoes for women please", SenderID: "923001"})

	assert.Contains(t, out.Reply, "Here's what I found for you:")
	assert.Contains(t, out.Reply, "Shoes for Women")
	assert.Equal(t, "Footwear", out.Intent)
}

func TestHandleCustomerGenderFromHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.orch.Handle(ctx, Inbound{Text: "it's a gift for my wife", SenderID: "923001"})
	out := f.orch.Handle(ctx, Inbound{Text: "show me shoes", SenderID: "923001"})

	// the remembered gender answers without another clarification
	assert.Contains(t, out.Reply, "Here's what I found for you:")
	assert.NotEqual(t, ClarifyGenderReply, out.Reply)
}

func TestHandleEmployeeBilling(t *testing.T) {
	f := newFixture(t, "923099")
	f.model.decision = llm.Decision{Kind: llm.KindBilling, Reason: "operational note"}

	out := f.orch.Handle(context.Background(), Inbound{
		Text:       "operation delay at the main store",
		SenderID:   "923099",
		SenderName: "Hamza",
	})

	assert.Equal(t, "Operations", out.Intent)
	require.NotNil(t, out.BillingEntry)
	assert.True(t, strings.HasPrefix(out.BillingEntry.ID, "OPS"))
	assert.Len(t, out.BillingEntry.ID, 15)
	assert.Equal(t, "Logged under Operations as entry "+out.BillingEntry.ID+".", out.Reply)

	entries := f.store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Hamza", entries[0].SenderName)

	rows, err := f.store.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Counts["OPS"])
}

func TestHandleEmployeeGreeting(t *testing.T) {
	f := newFixture(t, "923099")
	f.model.decision = llm.Decision{Kind: llm.KindGreeting}

	out := f.orch.Handle(context.Background(), Inbound{Text: "good morning", SenderID: "923099"})
	assert.Equal(t, EmployeeGreetingReply, out.Reply)
	assert.Empty(t, f.store.Entries())
}

func TestHandleEmployeeParseFailureFallsBack(t *testing.T) {
	f := newFixture(t, "923099")
	f.model.decision = llm.Decision{Kind: llm.KindParseFailure}

	out := f.orch.Handle(context.Background(), Inbound{Text: "courier shipment stuck", SenderID: "923099"})
	assert.Equal(t, EmployeeGreetingReply, out.Reply)
	assert.Empty(t, f.store.Entries())
}

func TestHandleCustomerCatalogNotLoaded(t *testing.T) {
	store := ledger.NewMemoryStore()
	orch := New(Deps{
		Sessions:    session.NewMemoryStore(),
		Model:       &fakeResponder{reply: "Happy to help!"},
		Resolver:    catalog.NewResolver(nil, catalog.DefaultWeights(), "https://example.test/g/"),
		Recorder:    ledger.NewRecorder(ledger.NewSequencer(store, intent.Billing), store),
		Threshold:   intent.DefaultThreshold,
		HistoryKeep: 10,
	})

	out := orch.Handle(context.Background(), Inbound{Text: "shoes for women", SenderID: "923001"})
	assert.Equal(t, ApologyReply, out.Reply)
}

func TestHandleCustomerTracksIntent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.orch.Handle(ctx, Inbound{Text: "do you have perfume for men", SenderID: "923001"})

	sess, err := f.sessions.GetOrCreate(ctx, "923001")
	require.NoError(t, err)
	assert.Equal(t, "Fragrance", sess.LastIntent)
	assert.False(t, sess.LastIntentAt.IsZero())
}
