package extract

import (
	"context"
	"io"
	"log/slog"

	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingStrategy returns canned output and counts calls.
type countingStrategy struct {
	method Method
	text   string
	err    error
	panics bool
	calls  int
}

func (s *countingStrategy) Method() Method { return s.method }

func (s *countingStrategy) Extract(context.Context, Document) (string, error) {
	s.calls++
	if s.panics {
		panic("boom")
	}
	return s.text, s.err
}

// fakeCompleter stands in for the provider gateway.
type fakeCompleter struct {
	out   string
	err   error
	calls int
	reqs  []llm.CompletionRequest
}

func (f *fakeCompleter) Complete(ctx context.Context, task llm.Task, prompt string, expectVersions bool) (llm.CompletionResult, error) {
	return f.Do(ctx, llm.CompletionRequest{Task: task, Prompt: prompt}, expectVersions)
}

func (f *fakeCompleter) Do(_ context.Context, req llm.CompletionRequest, _ bool) (llm.CompletionResult, error) {
	f.calls++
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return llm.CompletionResult{}, f.err
	}
	return llm.CompletionResult{Raw: f.out, Provider: "fake"}, nil
}

// stubRunner records the command line and returns canned output.
type stubRunner struct {
	out  []byte
	errb []byte
	err  error
	name string
	args []string
}

func (r *stubRunner) Run(_ context.Context, name string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	r.name = name
	r.args = args
	return r.out, r.errb, r.err
}
