package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/deckforge/deckforge/pkg/genai"
	"github.com/deckforge/deckforge/pkg/pipeline"
	"github.com/deckforge/deckforge/pkg/session"
	"github.com/deckforge/deckforge/pkg/spec"
)

// newChatCmd creates the chat command: an interactive conversation that
// refines an outline across turns before rendering the deck.
func newChatCmd() *cobra.Command {
	var resume bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Refine a deck outline interactively",
		Long: `Chat starts an interactive session. The first message becomes the deck
topic; follow-up messages refine the outline ("make slide 3 shorter",
"add a slide on pricing"). Type /generate to render the deck and /quit to
leave. Sessions persist, so --resume picks up where you left off.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), resume)
		},
	}

	cmd.Flags().BoolVar(&resume, "resume", false, "continue the most recent session")
	return cmd
}

// runChat wires the session store and AI client into the chat model and runs
// the program.
func runChat(ctx context.Context, resume bool) error {
	cfg := configFromContext(ctx)

	client, err := genai.NewOpenAIClient(genai.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Model:      cfg.Model,
		ImageModel: cfg.ImageModel,
		ImageSize:  cfg.ImageSize,
	})
	if err != nil {
		return err
	}

	store, err := session.NewFileStore("")
	if err != nil {
		return err
	}

	var sess *session.Session
	if resume {
		sess, err = store.Latest(ctx)
		if err != nil {
			return err
		}
		if sess == nil {
			printInfo("No previous session, starting fresh")
		}
	}

	runner, err := newRunner(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	m := newChatModel(ctx, cfg, client, store, runner, sess)
	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// ChatModel - Interactive outline refinement
// =============================================================================

// outlineMsg carries the result of an outline draft or refinement turn.
type outlineMsg struct {
	outline spec.Outline
	err     error
}

// deckMsg carries the result of rendering the deck.
type deckMsg struct {
	path string
	err  error
}

// chatModel is the bubbletea model for the chat session.
type chatModel struct {
	ctx    context.Context
	cfg    Config
	llm    genai.LLM
	store  session.Store
	runner *pipeline.Runner
	sess   *session.Session

	lines []string // transcript shown above the prompt
	input string   // current prompt contents
	busy  bool     // a model call is in flight
	quit  bool
}

func newChatModel(ctx context.Context, cfg Config, llm genai.LLM, store session.Store, runner *pipeline.Runner, sess *session.Session) chatModel {
	m := chatModel{ctx: ctx, cfg: cfg, llm: llm, store: store, runner: runner, sess: sess}
	if sess != nil {
		m.lines = append(m.lines, StyleDim.Render(fmt.Sprintf("resumed session on %q (%d turns)", sess.Topic, len(sess.Messages))))
		if sess.Outline != nil {
			m.lines = append(m.lines, renderOutlineSummary(*sess.Outline)...)
		}
	}
	return m
}

func (m chatModel) Init() tea.Cmd {
	return nil
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.busy || strings.TrimSpace(m.input) == "" {
				return m, nil
			}
			line := strings.TrimSpace(m.input)
			m.input = ""
			return m.submit(line)
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
			}
		case tea.KeySpace:
			m.input += " "
		case tea.KeyRunes:
			m.input += string(msg.Runes)
		}

	case outlineMsg:
		m.busy = false
		if msg.err != nil {
			m.lines = append(m.lines, styleIconError.Render(iconError)+" "+msg.err.Error())
			return m, nil
		}
		m.sess.SetOutline(msg.outline)
		m.sess.Append("assistant", outlineDigest(msg.outline))
		_ = m.store.Set(m.ctx, m.sess)
		m.lines = append(m.lines, renderOutlineSummary(msg.outline)...)
		m.lines = append(m.lines, StyleDim.Render("refine with another message, or /generate to render"))
		return m, nil

	case deckMsg:
		m.busy = false
		if msg.err != nil {
			m.lines = append(m.lines, styleIconError.Render(iconError)+" "+msg.err.Error())
			return m, nil
		}
		m.lines = append(m.lines, styleIconSuccess.Render(iconSuccess)+" wrote "+StyleValue.Render(msg.path))
		return m, nil
	}
	return m, nil
}

// submit handles one entered line: a command, the initial topic, or a
// refinement instruction.
func (m chatModel) submit(line string) (tea.Model, tea.Cmd) {
	switch line {
	case "/quit", "/q":
		m.quit = true
		return m, tea.Quit
	case "/generate":
		if m.sess == nil || m.sess.Outline == nil {
			m.lines = append(m.lines, StyleWarning.Render("nothing to render yet, describe a topic first"))
			return m, nil
		}
		m.lines = append(m.lines, StyleDim.Render("rendering deck..."))
		m.busy = true
		return m, m.generateCmd()
	}

	m.lines = append(m.lines, StyleHighlight.Render("you")+" "+line)
	m.busy = true

	if m.sess == nil {
		sess := session.New(line, session.DefaultTTL)
		m.sess = sess
		m.sess.Append("user", line)
		_ = m.store.Set(m.ctx, m.sess)
		m.lines = append(m.lines, StyleDim.Render("drafting outline..."))
		return m, m.draftCmd(line)
	}

	m.sess.Append("user", line)
	_ = m.store.Set(m.ctx, m.sess)
	m.lines = append(m.lines, StyleDim.Render("refining outline..."))
	return m, m.refineCmd(line)
}

// draftCmd drafts the first outline for the topic.
func (m chatModel) draftCmd(topic string) tea.Cmd {
	return func() tea.Msg {
		o, err := genai.GenerateOutline(m.ctx, m.llm, topic, genai.OutlineOptions{})
		return outlineMsg{outline: o, err: err}
	}
}

// refineCmd asks the model to rewrite the current outline per the
// instruction, reusing the session history for context.
func (m chatModel) refineCmd(instruction string) tea.Cmd {
	outline := *m.sess.Outline
	history := m.sess.History()
	return func() tea.Msg {
		o, err := genai.RefineOutline(m.ctx, m.llm, outline, history, instruction)
		return outlineMsg{outline: o, err: err}
	}
}

// generateCmd renders the session's outline into a deck file.
func (m chatModel) generateCmd() tea.Cmd {
	outline := *m.sess.Outline
	cfg := m.cfg
	return func() tea.Msg {
		opts := pipeline.Options{
			Outline:    &outline,
			Theme:      cfg.Theme,
			Author:     cfg.Author,
			Conclusion: true,
		}
		result, err := m.runner.Execute(m.ctx, opts)
		if err != nil {
			return deckMsg{err: err}
		}
		path := outputPath("", result.Outline.Title)
		if err := writeFile(path, result.PPTX); err != nil {
			return deckMsg{err: err}
		}
		return deckMsg{path: path}
	}
}

func (m chatModel) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("deckforge chat"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("describe a topic  ·  /generate renders  ·  /quit leaves"))
	b.WriteString("\n\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(StyleDim.Render("working..."))
	} else {
		b.WriteString(StyleHighlight.Render("> ") + m.input + "█")
	}
	b.WriteString("\n")
	return b.String()
}

// renderOutlineSummary formats the outline as transcript lines.
func renderOutlineSummary(o spec.Outline) []string {
	lines := []string{StyleValue.Render(o.Title)}
	for i, s := range o.Slides {
		lines = append(lines, StyleDim.Render(fmt.Sprintf("  %d. %s (%d items)", i+1, s.Title, len(s.Items))))
	}
	return lines
}

// outlineDigest is the compact form of an outline stored as the assistant's
// conversation turn.
func outlineDigest(o spec.Outline) string {
	titles := make([]string, len(o.Slides))
	for i, s := range o.Slides {
		titles[i] = s.Title
	}
	return fmt.Sprintf("outline %q: %s", o.Title, strings.Join(titles, "; "))
}
