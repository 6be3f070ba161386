package chat

import (
	"context"
	"fmt"
	"strings"

	"jobquest-utils/internal/config"
	"jobquest-utils/internal/logging"
	"jobquest-utils/internal/search"
	"jobquest-utils/pkg/models"
)

const systemPrompt = "You are a friendly job-search assistant. Help the user find " +
	"relevant job openings, answer questions about their search, and keep replies " +
	"short and conversational."

// jobKeywords trigger the job-search path. Matching is lexical; the
// language model is only consulted for the conversational reply.
var jobKeywords = []string{
	"job", "jobs", "work", "career", "position", "hiring", "employment",
	"vacancy", "opening", "role", "salary", "recruiter", "interview",
}

// fallback lines used when the language model is unavailable
const (
	fallbackLeadIn = "Here's what I found:"
	fallbackReply  = "I'm here to help with your job search. Tell me what kind of " +
		"role you're looking for, and where."
)

// ReplyGenerator produces free-text replies. Satisfied by the LLM manager.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt, systemPrompt string) (string, error)
}

// Searcher runs the job-search pipeline. Satisfied by the search aggregator.
type Searcher interface {
	Search(ctx context.Context, query string, params *models.SearchParams) *models.SearchResult
}

// capability is one entry in the orchestrator's dispatch table
type capability func(ctx context.Context, session *Session, text string) string

// Orchestrator routes each user message to either a plain
// conversational reply or one of the job-search capabilities.
type Orchestrator struct {
	cfg          *config.Config
	extractor    *search.Extractor
	searcher     Searcher
	llm          ReplyGenerator
	sessions     *SessionStore
	capabilities map[string]capability
}

// NewOrchestrator wires the chat orchestrator together
func NewOrchestrator(cfg *config.Config, searcher Searcher, llm ReplyGenerator, sessions *SessionStore) *Orchestrator {
	o := &Orchestrator{
		cfg:       cfg,
		extractor: search.NewExtractor(cfg.Chat.BaseLocation),
		searcher:  searcher,
		llm:       llm,
		sessions:  sessions,
	}

	o.capabilities = map[string]capability{
		"search_jobs":   o.searchJobs,
		"refine_search": o.refineSearch,
	}

	return o
}

// HandleMessage appends the user message to its session, produces the
// agent reply, records it, and returns it with the session ID.
func (o *Orchestrator) HandleMessage(ctx context.Context, conversationID, text string) (string, string) {
	session := o.sessions.Get(conversationID)
	session.Append(text, models.SenderUser)

	var reply string
	if name := o.classify(session, text); name != "" {
		reply = o.capabilities[name](ctx, session, text)
	} else {
		reply = o.plainReply(ctx, text)
	}

	session.Append(reply, models.SenderAgent)
	return reply, session.ID
}

// classify picks a capability name for the message, or empty for a
// plain conversational reply. A repeat job query in a session that has
// already searched is treated as a refinement.
func (o *Orchestrator) classify(session *Session, text string) string {
	if !isJobQuery(text) {
		return ""
	}
	if session.HasSearched() {
		return "refine_search"
	}
	return "search_jobs"
}

// isJobQuery reports whether the message looks job-related
func isJobQuery(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range jobKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// searchJobs runs the full search pipeline for a fresh query
func (o *Orchestrator) searchJobs(ctx context.Context, session *Session, text string) string {
	return o.runSearch(ctx, session, text)
}

// refineSearch re-runs the pipeline; parameters are recomputed from
// the full history, so the new message narrows the previous search.
func (o *Orchestrator) refineSearch(ctx context.Context, session *Session, text string) string {
	return o.runSearch(ctx, session, text)
}

func (o *Orchestrator) runSearch(ctx context.Context, session *Session, text string) string {
	params := o.extractor.Extract(session.History())

	var searchParams *models.SearchParams
	if o.cfg.Chat.ApplyFilters {
		searchParams = &params
	}

	result := o.searcher.Search(ctx, text, searchParams)
	session.MarkSearched()

	if result.Status != models.StatusSuccess {
		logging.Error("job search failed", map[string]interface{}{
			"conversation_id": session.ID,
			"error":           result.Error,
		})
		return "I ran into a problem while searching for jobs. Please try again in a moment."
	}

	leadIn := o.leadIn(ctx, text, result)
	return leadIn + "\n\n" + FormatJobsForChat(result, o.cfg.Chat.MaxResults)
}

// leadIn asks the language model for a one-line introduction to the
// results, falling back to a canned line if the model is unavailable.
func (o *Orchestrator) leadIn(ctx context.Context, text string, result *models.SearchResult) string {
	prompt := fmt.Sprintf(
		"The user asked: %q. A job search returned %d matching jobs. "+
			"Write one short, friendly sentence introducing the listings. "+
			"Do not list the jobs themselves.",
		text, result.TotalJobs)

	reply, err := o.llm.GenerateReply(ctx, prompt, systemPrompt)
	if err != nil || reply == "" {
		if err != nil {
			logging.Warn("lead-in generation failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return fallbackLeadIn
	}
	return reply
}

// plainReply handles messages with no job-search intent
func (o *Orchestrator) plainReply(ctx context.Context, text string) string {
	reply, err := o.llm.GenerateReply(ctx, text, systemPrompt)
	if err != nil || reply == "" {
		if err != nil {
			logging.Warn("reply generation failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return fallbackReply
	}
	return reply
}
