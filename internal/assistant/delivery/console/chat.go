package console

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"campus-assistant/internal/assistant"
	"campus-assistant/internal/model"
)

const (
	cmdQuit = "/quit"
	cmdSave = "/save"
	cmdHelp = "/help"

	typingIndicator = "Typing..."
	helpText        = "Commands: /save <file>  write the conversation to a text file\n          /quit         exit"
)

type result struct {
	text string
	err  error
}

// Run reads messages until /quit, end of input or ctx is done. On end of
// input it waits for outstanding answers before returning.
func (ch *Chat) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go ch.readLines(lines, readErr, done)

	results := make(chan result)

	var (
		tr      transcript
		pending int
		inputOK = true
	)

	ch.printf("%s\n%s\n\n", ch.botName, helpText)

	for inputOK || pending > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("console: read input: %w", err)
			}
			inputOK = false

		case line := <-lines:
			text := strings.TrimSpace(line)
			switch {
			case text == "":
				continue
			case text == cmdQuit:
				return nil
			case text == cmdHelp:
				ch.printf("%s\n", helpText)
			case text == cmdSave || strings.HasPrefix(text, cmdSave+" "):
				ch.save(&tr, strings.TrimSpace(strings.TrimPrefix(text, cmdSave)))
			default:
				tr.user(text)
				ch.printf("You: %s\n%s\n", text, typingIndicator)
				pending++
				go ch.answer(ctx, text, results, done)
			}

		case r := <-results:
			pending--
			if r.err != nil {
				ch.printf("System: ⚠️ Error: %v\n", r.err)
				continue
			}
			tr.bot(r.text)
			ch.printf("%s: %s\n", ch.botName, r.text)
			if pending > 0 {
				ch.printf("%s\n", typingIndicator)
			}
		}
	}
	return nil
}

// answer runs on its own goroutine and hands the reply to the UI loop.
func (ch *Chat) answer(ctx context.Context, text string, results chan<- result, done <-chan struct{}) {
	sc := model.Scope{UserID: ch.userID, Channel: model.ChannelDesktop}
	out, err := ch.uc.Reply(ctx, sc, assistant.ReplyInput{MessageID: uuid.NewString(), Text: text})
	if err != nil {
		ch.l.Errorf(ctx, "console: reply failed: %v", err)
	}

	select {
	case results <- result{text: out.Text, err: err}:
	case <-done:
	}
}

func (ch *Chat) save(tr *transcript, path string) {
	if path == "" {
		ch.printf("System: usage: %s <file>\n", cmdSave)
		return
	}
	if err := tr.Save(path); err != nil {
		ch.printf("System: ⚠️ Could not save file: %v\n", err)
		return
	}
	ch.printf("System: ✅ Conversation saved to %s\n", path)
}

func (ch *Chat) readLines(lines chan<- string, errc chan<- error, done <-chan struct{}) {
	sc := bufio.NewScanner(ch.in)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-done:
			return
		}
	}
	errc <- sc.Err()
}

func (ch *Chat) printf(format string, args ...any) {
	fmt.Fprintf(ch.out, format, args...)
}
