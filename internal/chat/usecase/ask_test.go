package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pixel-recruiter/internal/chat"
	"pixel-recruiter/internal/chat/intent"
	"pixel-recruiter/internal/chat/router"
	"pixel-recruiter/internal/job/repository"
	"pixel-recruiter/internal/model"
	"pixel-recruiter/pkg/groq"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubRouter struct {
	routeFunc func(ctx context.Context, question string) router.Decision
	calls     int
}

func (s *stubRouter) Route(ctx context.Context, question string) router.Decision {
	s.calls++
	return s.routeFunc(ctx, question)
}

type stubGroq struct {
	completeFunc func(ctx context.Context, req *groq.Request) (*groq.Response, error)
	calls        int
}

func (s *stubGroq) CreateChatCompletion(ctx context.Context, req *groq.Request) (*groq.Response, error) {
	s.calls++
	return s.completeFunc(ctx, req)
}

type stubJobRepo struct {
	listBySalaryFunc  func(ctx context.Context, opt repository.ListBySalaryOptions) ([]model.Job, error)
	listByRecencyFunc func(ctx context.Context, opt repository.ListByRecencyOptions) ([]model.Job, error)
	getByIDsFunc      func(ctx context.Context, ids []int64, limit int) ([]model.Job, error)
}

func (s *stubJobRepo) ListBySalary(ctx context.Context, opt repository.ListBySalaryOptions) ([]model.Job, error) {
	return s.listBySalaryFunc(ctx, opt)
}

func (s *stubJobRepo) ListByRecency(ctx context.Context, opt repository.ListByRecencyOptions) ([]model.Job, error) {
	return s.listByRecencyFunc(ctx, opt)
}

func (s *stubJobRepo) GetByIDs(ctx context.Context, ids []int64, limit int) ([]model.Job, error) {
	return s.getByIDsFunc(ctx, ids, limit)
}

type stubVectorRepo struct {
	searchFunc func(ctx context.Context, query string, limit int) ([]repository.SearchResult, error)
}

func (s *stubVectorRepo) EmbedJob(ctx context.Context, job model.Job) error { return nil }

func (s *stubVectorRepo) SearchJobs(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
	return s.searchFunc(ctx, query, limit)
}

func answerWith(content string) *groq.Response {
	return &groq.Response{
		Choices: []groq.Choice{{Message: groq.Message{Role: "assistant", Content: content}}},
	}
}

func TestAskLocalIntent(t *testing.T) {
	ctx := context.Background()

	rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
		t.Fatal("router must not be called for local intents")
		return router.Decision{}
	}}
	llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
		t.Fatal("completion must not be called for local intents")
		return nil, nil
	}}

	uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, &stubJobRepo{}, &stubVectorRepo{})

	out, err := uc.Ask(ctx, chat.AskInput{Question: "hi there"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Answer, "AI Recruiter") {
		t.Errorf("answer = %q, want greeting text", out.Answer)
	}
	if out.Actions == nil {
		t.Error("actions must be an empty slice, not nil")
	}
	if rt.calls != 0 || llm.calls != 0 {
		t.Errorf("remote calls made: router=%d llm=%d", rt.calls, llm.calls)
	}
	if out.Duration < 0 {
		t.Errorf("duration = %v", out.Duration)
	}
}

func TestAskValidation(t *testing.T) {
	ctx := context.Background()
	uc := New(&mockLogger{}, intent.NewDefault(), &stubRouter{}, &stubGroq{}, &stubJobRepo{}, &stubVectorRepo{})

	t.Run("empty question", func(t *testing.T) {
		_, err := uc.Ask(ctx, chat.AskInput{Question: "   "})
		if !errors.Is(err, chat.ErrEmptyQuestion) {
			t.Errorf("err = %v, want ErrEmptyQuestion", err)
		}
	})

	t.Run("oversized question", func(t *testing.T) {
		_, err := uc.Ask(ctx, chat.AskInput{Question: strings.Repeat("x", chat.MaxQuestionLength+1)})
		if !errors.Is(err, chat.ErrQuestionTooLong) {
			t.Errorf("err = %v, want ErrQuestionTooLong", err)
		}
	})

	t.Run("exactly at limit passes validation", func(t *testing.T) {
		// All-x input misses every local intent and reaches the router.
		rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
			return router.FallbackDecision()
		}}
		vec := &stubVectorRepo{searchFunc: func(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
			return nil, nil
		}}
		llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
			return answerWith("nothing found"), nil
		}}
		uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, &stubJobRepo{}, vec)

		_, err := uc.Ask(ctx, chat.AskInput{Question: strings.Repeat("x", chat.MaxQuestionLength)})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestAskSalaryPath(t *testing.T) {
	ctx := context.Background()

	rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
		return router.Decision{
			Tool:       router.ToolSalaryQuery,
			Sort:       router.SortDesc,
			Limit:      3,
			SearchTerm: "Laravel",
		}
	}}

	var gotOpt repository.ListBySalaryOptions
	repo := &stubJobRepo{listBySalaryFunc: func(ctx context.Context, opt repository.ListBySalaryOptions) ([]model.Job, error) {
		gotOpt = opt
		return []model.Job{
			{ID: 1, Title: "Senior Laravel Developer", Location: "Cairo", Salary: "90,000 EGP", CompanyName: "Acme", TagNames: []string{"php", "laravel"}},
		}, nil
	}}

	var synthInput string
	llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
		synthInput = req.Messages[1].Content
		return answerWith("Here is the top paying Laravel job."), nil
	}}

	uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, repo, &stubVectorRepo{})

	out, err := uc.Ask(ctx, chat.AskInput{Question: "top 3 highest paying Laravel jobs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := repository.ListBySalaryOptions{Direction: "desc", TitleFilter: "Laravel", Limit: 3}
	if gotOpt != want {
		t.Errorf("salary options = %+v, want %+v", gotOpt, want)
	}

	if !strings.Contains(synthInput, "Strict database result for salary sort (Filter: Laravel):") {
		t.Errorf("context missing salary header: %q", synthInput)
	}
	if !strings.Contains(synthInput, "- Role: Senior Laravel Developer | Location: Cairo | Company: Acme | Pay: 90,000 EGP | Tags: [php, laravel]") {
		t.Errorf("context missing job line: %q", synthInput)
	}
	if !strings.Contains(synthInput, "USER QUESTION:\ntop 3 highest paying Laravel jobs") {
		t.Errorf("context missing question: %q", synthInput)
	}

	if out.Answer != "Here is the top paying Laravel job." {
		t.Errorf("answer = %q", out.Answer)
	}
	if len(out.Actions) != 0 {
		t.Errorf("actions = %v, want empty", out.Actions)
	}
}

func TestAskRecencyPath(t *testing.T) {
	ctx := context.Background()

	rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
		return router.Decision{Tool: router.ToolRecencyQuery, Sort: router.SortDesc, Limit: 5}
	}}

	repo := &stubJobRepo{listByRecencyFunc: func(ctx context.Context, opt repository.ListByRecencyOptions) ([]model.Job, error) {
		return []model.Job{
			{ID: 2, Title: "Go Engineer", Location: "Remote", CompanyName: "Beta", CreatedAt: time.Now().Add(-2 * time.Hour)},
		}, nil
	}}

	var synthInput string
	llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
		synthInput = req.Messages[1].Content
		return answerWith("One new posting."), nil
	}}

	uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, repo, &stubVectorRepo{})

	if _, err := uc.Ask(ctx, chat.AskInput{Question: "newest postings"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(synthInput, "Strict database result for recent jobs:") {
		t.Errorf("context missing recency header: %q", synthInput)
	}
	if !strings.Contains(synthInput, "Posted: 2 hours ago") {
		t.Errorf("context missing humanized timestamp: %q", synthInput)
	}
}

func TestAskSemanticPath(t *testing.T) {
	ctx := context.Background()

	t.Run("router failure degrades to broad semantic search", func(t *testing.T) {
		rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
			return router.FallbackDecision()
		}}

		var gotQuery string
		var gotLimit int
		vec := &stubVectorRepo{searchFunc: func(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
			gotQuery, gotLimit = query, limit
			return []repository.SearchResult{{JobID: 7, Score: 0.91}}, nil
		}}

		repo := &stubJobRepo{getByIDsFunc: func(ctx context.Context, ids []int64, limit int) ([]model.Job, error) {
			if len(ids) != 1 || ids[0] != 7 {
				t.Errorf("ids = %v, want [7]", ids)
			}
			return []model.Job{{ID: 7, Title: "Backend Developer", Description: strings.Repeat("d", 700)}}, nil
		}}

		var synthInput string
		llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
			synthInput = req.Messages[1].Content
			return answerWith("Found one backend role."), nil
		}}

		uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, repo, vec)

		out, err := uc.Ask(ctx, chat.AskInput{Question: "backend roles with growth"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotQuery != "backend roles with growth" {
			t.Errorf("vector query = %q, want raw question", gotQuery)
		}
		if gotLimit != 15 {
			t.Errorf("vector limit = %d, want fallback 15", gotLimit)
		}
		if !strings.Contains(synthInput, "JOB ID: 7") {
			t.Errorf("context missing job block: %q", synthInput)
		}
		if !strings.Contains(synthInput, strings.Repeat("d", 600)+"...") {
			t.Error("description not truncated with ellipsis")
		}
		if strings.Contains(synthInput, strings.Repeat("d", 601)) {
			t.Error("description exceeds cap")
		}
		if out.Answer != "Found one backend role." {
			t.Errorf("answer = %q", out.Answer)
		}
	})

	t.Run("no vector matches yields marker context", func(t *testing.T) {
		rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
			return router.Decision{Tool: router.ToolSemanticQuery, Sort: router.SortDesc, Limit: 5}
		}}
		vec := &stubVectorRepo{searchFunc: func(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
			return []repository.SearchResult{}, nil
		}}

		var synthInput string
		llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
			synthInput = req.Messages[1].Content
			return answerWith("Sorry, nothing matched."), nil
		}}

		uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, &stubJobRepo{}, vec)

		if _, err := uc.Ask(ctx, chat.AskInput{Question: "underwater basket weaving jobs"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(synthInput, "JOB DATA:\nNo relevant jobs found in the database.") {
			t.Errorf("context = %q, want not-found marker", synthInput)
		}
	})

	t.Run("ids resolve to no rows yields marker context", func(t *testing.T) {
		rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
			return router.Decision{Tool: router.ToolSemanticQuery, Sort: router.SortDesc, Limit: 5}
		}}
		vec := &stubVectorRepo{searchFunc: func(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
			return []repository.SearchResult{{JobID: 99, Score: 0.5}}, nil
		}}
		repo := &stubJobRepo{getByIDsFunc: func(ctx context.Context, ids []int64, limit int) ([]model.Job, error) {
			return []model.Job{}, nil
		}}

		var synthInput string
		llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
			synthInput = req.Messages[1].Content
			return answerWith("Nothing in the catalog."), nil
		}}

		uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, repo, vec)

		if _, err := uc.Ask(ctx, chat.AskInput{Question: "jobs deleted yesterday"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(synthInput, NoRelevantJobsMarker) {
			t.Errorf("context = %q, want not-found marker", synthInput)
		}
	})
}

func TestAskRetrievalFailure(t *testing.T) {
	ctx := context.Background()

	rt := &stubRouter{routeFunc: func(ctx context.Context, question string) router.Decision {
		return router.Decision{Tool: router.ToolSalaryQuery, Sort: router.SortDesc, Limit: 5}
	}}
	repo := &stubJobRepo{listBySalaryFunc: func(ctx context.Context, opt repository.ListBySalaryOptions) ([]model.Job, error) {
		return nil, errors.New("connection refused")
	}}
	llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
		t.Fatal("synthesizer must not run after retrieval failure")
		return nil, nil
	}}

	uc := New(&mockLogger{}, intent.NewDefault(), rt, llm, repo, &stubVectorRepo{})

	_, err := uc.Ask(ctx, chat.AskInput{Question: "highest paying jobs"})
	if !errors.Is(err, chat.ErrRetrievalFailed) {
		t.Errorf("err = %v, want ErrRetrievalFailed", err)
	}
}

func TestSynthesizeDegradedAnswers(t *testing.T) {
	ctx := context.Background()

	t.Run("connection error becomes literal answer", func(t *testing.T) {
		llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
			return nil, errors.New("dial tcp: timeout")
		}}
		uc := New(&mockLogger{}, intent.NewDefault(), &stubRouter{}, llm, &stubJobRepo{}, &stubVectorRepo{})

		got := uc.synthesize(ctx, "any question", "some context")
		if got != "Connection Error: dial tcp: timeout" {
			t.Errorf("answer = %q", got)
		}
	})

	t.Run("empty completion becomes apology", func(t *testing.T) {
		llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
			return &groq.Response{}, nil
		}}
		uc := New(&mockLogger{}, intent.NewDefault(), &stubRouter{}, llm, &stubJobRepo{}, &stubVectorRepo{})

		got := uc.synthesize(ctx, "any question", "some context")
		if got != AnswerOnEmptyCompletion {
			t.Errorf("answer = %q, want %q", got, AnswerOnEmptyCompletion)
		}
	})

	t.Run("synthesizer temperature", func(t *testing.T) {
		var gotTemp float64
		llm := &stubGroq{completeFunc: func(ctx context.Context, req *groq.Request) (*groq.Response, error) {
			gotTemp = req.Temperature
			return answerWith("ok"), nil
		}}
		uc := New(&mockLogger{}, intent.NewDefault(), &stubRouter{}, llm, &stubJobRepo{}, &stubVectorRepo{})

		uc.synthesize(ctx, "q", "ctx")
		if gotTemp != SynthesizerTemperature {
			t.Errorf("temperature = %v, want %v", gotTemp, SynthesizerTemperature)
		}
	})
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 600); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := strings.Repeat("é", 601)
	got := truncate(long, 600)
	if got != strings.Repeat("é", 600)+"..." {
		t.Errorf("truncate did not cut at rune boundary: len=%d", len([]rune(got)))
	}
}
