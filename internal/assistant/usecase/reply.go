package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"campus-assistant/internal/assistant"
	"campus-assistant/internal/model"
	"campus-assistant/pkg/llmprovider"
)

// Reply runs the pipeline for one message. Language detection and topic
// lookup (with its page fetch) run concurrently; neither can fail the request.
// LLM failures become the reply text and are logged like any other answer.
func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input assistant.ReplyInput) (assistant.ReplyOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ReplyOutput{}, assistant.ErrEmptyInput
	}

	if input.AllowDownload && isDownloadRequest(text) {
		return uc.downloadReply(ctx, sc)
	}

	var (
		lang       string
		matchedURL string
		excerpt    *assistant.WebExcerpt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lang = uc.detector.Detect(text)
		return nil
	})
	g.Go(func() error {
		url, ok := uc.matcher.Match(text)
		if !ok {
			return nil
		}
		matchedURL = url
		excerpt = uc.fetchExcerpt(gctx, url)
		return nil
	})
	_ = g.Wait()

	if matchedURL == "" && uc.matcher.SuggestsWebSearch(text) {
		uc.l.Debugf(ctx, "assistant.usecase.Reply: message looks like a web question but matched no topic")
	}

	out := assistant.ReplyOutput{
		Kind:       assistant.ReplyKindAnswer,
		Language:   lang,
		MatchedURL: matchedURL,
	}

	prompt, err := BuildPrompt(assistant.Prompt{
		Persona:  uc.opts.Persona,
		Language: lang,
		Excerpt:  excerpt,
		UserText: text,
	})
	if err != nil {
		return assistant.ReplyOutput{}, fmt.Errorf("assistant.usecase.Reply: %w", err)
	}

	raw, err := uc.generate(ctx, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Reply: llm failed for %s: %v", sc.UserID, err)
		out.Kind = assistant.ReplyKindError
		out.Text = fmt.Sprintf(uc.opts.ErrorReplyTemplate, err)
	} else {
		out.Text = uc.enricher.Enrich(raw, matchedURL)
	}

	out.Persisted = uc.persist(ctx, sc, text, out.Text)
	return out, nil
}

func (uc *implUseCase) fetchExcerpt(ctx context.Context, url string) *assistant.WebExcerpt {
	ex := &assistant.WebExcerpt{SourceURL: url}
	if uc.fetcher == nil {
		return ex
	}
	ex.Text, ex.Available = uc.fetcher.Fetch(ctx, url)
	ex.FetchedAt = uc.now()
	return ex
}

func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserText(prompt, uc.opts.Temperature))
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", assistant.ErrEmptyCompletion
	}
	return text, nil
}

func (uc *implUseCase) persist(ctx context.Context, sc model.Scope, userText, reply string) bool {
	err := uc.repo.Append(ctx, model.ConversationLogEntry{
		UserID:      sc.UserID,
		Timestamp:   uc.now(),
		UserMessage: userText,
		BotReply:    reply,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.Reply: persist conversation for %s: %v", sc.UserID, err)
		return false
	}
	return true
}
